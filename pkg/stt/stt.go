// Package stt provides speech-to-text transcription behind a narrow
// provider interface.
//
// Providers that transcribe asynchronously (upload the audio, then poll a
// job until it completes) are driven by a Transcriber, which owns the
// bounded polling discipline and the error classification for every stage:
//
//	provider, _ := stt.NewAssemblyAI(stt.WithAPIKey(os.Getenv("ASSEMBLY_API_KEY")))
//	defer provider.Close()
//
//	transcriber := stt.NewTranscriber(provider, stt.DefaultPollPolicy())
//	text, err := transcriber.Transcribe(ctx, audio, "audio/webm;codecs=opus")
package stt

import "context"

// Status is the lifecycle state of a transcription job.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether the status is a final state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Job identifies one in-flight transcription at the provider.
type Job struct {
	// ID is the opaque job locator issued by the provider.
	ID string
}

// JobStatus is a point-in-time view of a transcription job.
type JobStatus struct {
	Status Status

	// Text holds the transcript once Status is StatusCompleted.
	Text string

	// Error holds the provider's diagnostic once Status is StatusError.
	Error string
}

// Provider is the transcription provider interface.
// Implementations submit audio for asynchronous transcription and report
// job progress; the polling loop itself lives in Transcriber.
type Provider interface {
	// Submit uploads audio and starts a transcription job.
	// The declared MIME type must already be normalized (see NormalizeMIMEType).
	Submit(ctx context.Context, audio []byte, mimeType string) (Job, error)

	// Poll fetches the current status of a job.
	Poll(ctx context.Context, job Job) (JobStatus, error)

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Close releases any resources held by the provider.
	Close() error
}
