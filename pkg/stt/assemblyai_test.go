package stt_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daroloh/voice-agent/pkg/stt"
)

func newTestProvider(t *testing.T, handler http.Handler) (*stt.AssemblyAI, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := stt.NewAssemblyAI(
		stt.WithAPIKey("test-key"),
		stt.WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("NewAssemblyAI failed: %v", err)
	}
	t.Cleanup(func() { provider.Close() })
	return provider, server
}

func TestNewAssemblyAIRequiresKey(t *testing.T) {
	_, err := stt.NewAssemblyAI()
	if !errors.Is(err, stt.ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestSubmitUploadsRawBinary(t *testing.T) {
	var uploadedContentType string
	var uploadedBody []byte

	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		uploadedContentType = r.Header.Get("Content-Type")
		uploadedBody, _ = io.ReadAll(r.Body)
		if r.Header.Get("Authorization") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.example/audio"})
	})
	mux.HandleFunc("/transcript", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["audio_url"] != "https://cdn.example/audio" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "job-123"})
	})

	provider, _ := newTestProvider(t, mux)

	job, err := provider.Submit(context.Background(), []byte("raw audio bytes"), "audio/webm")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if job.ID != "job-123" {
		t.Errorf("expected job id job-123, got %q", job.ID)
	}
	if uploadedContentType != "audio/webm" {
		t.Errorf("expected content type audio/webm, got %q", uploadedContentType)
	}
	if string(uploadedBody) != "raw audio bytes" {
		t.Error("expected raw binary upload body")
	}
}

func TestSubmitUploadRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid api key"))
	})

	provider, _ := newTestProvider(t, mux)

	_, err := provider.Submit(context.Background(), []byte("audio"), "audio/webm")
	var upErr *stt.UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if upErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", upErr.StatusCode)
	}
	if !strings.Contains(upErr.Message, "invalid api key") {
		t.Errorf("expected provider diagnostic in message, got %q", upErr.Message)
	}
}

func TestSubmitMissingUploadURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		// Success status but contract violation: no locator field.
		json.NewEncoder(w).Encode(map[string]string{"unexpected": "shape"})
	})

	provider, _ := newTestProvider(t, mux)

	_, err := provider.Submit(context.Background(), []byte("audio"), "audio/webm")
	var upErr *stt.UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if !strings.Contains(upErr.Message, "no upload_url") {
		t.Errorf("expected contract violation diagnostic, got %q", upErr.Message)
	}
}

func TestPollStatuses(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
		want stt.JobStatus
	}{
		{
			name: "queued",
			body: map[string]string{"status": "queued"},
			want: stt.JobStatus{Status: stt.StatusQueued},
		},
		{
			name: "processing",
			body: map[string]string{"status": "processing"},
			want: stt.JobStatus{Status: stt.StatusProcessing},
		},
		{
			name: "completed",
			body: map[string]string{"status": "completed", "text": "hello there"},
			want: stt.JobStatus{Status: stt.StatusCompleted, Text: "hello there"},
		},
		{
			name: "error",
			body: map[string]string{"status": "error", "error": "corrupt audio"},
			want: stt.JobStatus{Status: stt.StatusError, Error: "corrupt audio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/transcript/job-123", func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.body)
			})

			provider, _ := newTestProvider(t, mux)

			status, err := provider.Poll(context.Background(), stt.Job{ID: "job-123"})
			if err != nil {
				t.Fatalf("Poll failed: %v", err)
			}
			if status != tt.want {
				t.Errorf("Poll = %+v, want %+v", status, tt.want)
			}
		})
	}
}

func TestPollNonSuccessStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/transcript/job-123", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	})

	provider, _ := newTestProvider(t, mux)

	_, err := provider.Poll(context.Background(), stt.Job{ID: "job-123"})
	var pollErr *stt.PollError
	if !errors.As(err, &pollErr) {
		t.Fatalf("expected PollError, got %v", err)
	}
	if pollErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", pollErr.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/transcript", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("{}"))
	})

	provider, _ := newTestProvider(t, mux)

	if err := provider.Health(context.Background()); err != nil {
		t.Errorf("expected healthy, got %v", err)
	}
}
