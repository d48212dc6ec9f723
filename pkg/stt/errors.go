package stt

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoAPIKey is returned when the API key is missing.
	ErrNoAPIKey = errors.New("stt: API key required")

	// ErrEmptyAudio is returned when the submitted audio buffer is empty.
	ErrEmptyAudio = errors.New("stt: empty audio input")

	// ErrEmptyTranscript is returned when a completed job carries no text.
	// Silence or unintelligible audio is a defined failure, not an empty
	// success.
	ErrEmptyTranscript = errors.New("stt: transcription returned empty text")

	// ErrPollTimeout is returned when the job does not reach a terminal
	// state within the polling budget.
	ErrPollTimeout = errors.New("stt: transcription timed out")
)

// UploadError reports a rejected or malformed submission. It covers both a
// non-success provider response and a success response that violates the
// provider contract (missing job locator).
type UploadError struct {
	// StatusCode is the provider's HTTP status, 0 for transport failures.
	StatusCode int

	// Message is the provider's diagnostic text.
	Message string
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("stt: upload failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("stt: upload failed: %s", e.Message)
}

// PollError reports a non-success HTTP response while polling job status.
type PollError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *PollError) Error() string {
	return fmt.Sprintf("stt: status poll failed (%d): %s", e.StatusCode, e.Message)
}

// JobError reports a job that reached the terminal error state at the
// provider. It is never retried.
type JobError struct {
	// Message is the provider's error diagnostic.
	Message string
}

// Error implements the error interface.
func (e *JobError) Error() string {
	return fmt.Sprintf("stt: transcription failed: %s", e.Message)
}
