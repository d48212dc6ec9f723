package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daroloh/voice-agent/internal/httpc"
)

const assemblyAIBaseURL = "https://api.assemblyai.com/v2"

// AssemblyAI implements Provider for the AssemblyAI transcription API.
//
// Submission is a two-step flow: the raw audio is uploaded first, then a
// transcript job is created against the returned upload URL. Job progress
// is reported by the transcript status endpoint.
type AssemblyAI struct {
	config  *Config
	client  *http.Client
	logger  *slog.Logger
	baseURL string
}

// NewAssemblyAI creates a new AssemblyAI transcription provider.
func NewAssemblyAI(opts ...Option) (*AssemblyAI, error) {
	cfg := DefaultConfig()
	cfg.Apply(opts...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = assemblyAIBaseURL
	}

	return &AssemblyAI{
		config:  cfg,
		client:  httpc.NewClient(cfg.Timeout),
		logger:  cfg.Logger.With("component", "stt.assemblyai"),
		baseURL: baseURL,
	}, nil
}

// Submit uploads the audio as a raw binary body and creates a transcript job.
func (a *AssemblyAI) Submit(ctx context.Context, audio []byte, mimeType string) (Job, error) {
	if len(audio) == 0 {
		return Job{}, ErrEmptyAudio
	}

	audioURL, err := a.upload(ctx, audio, mimeType)
	if err != nil {
		return Job{}, err
	}

	return a.createTranscript(ctx, audioURL)
}

// upload sends the raw audio bytes and returns the provider's upload URL.
func (a *AssemblyAI) upload(ctx context.Context, audio []byte, mimeType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/upload", bytes.NewReader(audio))
	if err != nil {
		return "", &UploadError{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Authorization", a.config.APIKey)
	req.Header.Set("Content-Type", mimeType)

	a.logger.Debug("uploading audio",
		"bytes", len(audio),
		"mime_type", mimeType,
	)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &UploadError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &UploadError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("invalid upload response: %s", truncate(string(body), 200))}
	}
	if result.UploadURL == "" {
		// A 200 with no locator is a provider contract violation, not a
		// transient error.
		return "", &UploadError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("upload succeeded but no upload_url in response: %s", truncate(string(body), 200))}
	}

	return result.UploadURL, nil
}

// createTranscript starts a transcription job for an uploaded audio URL.
func (a *AssemblyAI) createTranscript(ctx context.Context, audioURL string) (Job, error) {
	payload, err := json.Marshal(map[string]string{"audio_url": audioURL})
	if err != nil {
		return Job{}, &UploadError{Message: fmt.Sprintf("marshal payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/transcript", bytes.NewReader(payload))
	if err != nil {
		return Job{}, &UploadError{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Authorization", a.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return Job{}, &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return Job{}, &UploadError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil || result.ID == "" {
		return Job{}, &UploadError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("transcript created but no id in response: %s", truncate(string(body), 200))}
	}

	return Job{ID: result.ID}, nil
}

// Poll fetches the current status of a transcript job.
func (a *AssemblyAI) Poll(ctx context.Context, job Job) (JobStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/transcript/"+job.ID, nil)
	if err != nil {
		return JobStatus{}, &PollError{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Authorization", a.config.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return JobStatus{}, &PollError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return JobStatus{}, &PollError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		Status string `json:"status"`
		Text   string `json:"text"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return JobStatus{}, &PollError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("invalid status response: %s", truncate(string(body), 200))}
	}

	return JobStatus{
		Status: Status(result.Status),
		Text:   result.Text,
		Error:  result.Error,
	}, nil
}

// Health checks API connectivity and key validity via the transcript list
// endpoint.
func (a *AssemblyAI) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/transcript?limit=1", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", a.config.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("stt: health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &PollError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return nil
}

// Close releases resources.
func (a *AssemblyAI) Close() error {
	a.client.CloseIdleConnections()
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Verify AssemblyAI implements Provider at compile time.
var _ Provider = (*AssemblyAI)(nil)
