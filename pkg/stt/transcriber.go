package stt

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// PollPolicy bounds the polling loop for asynchronous transcription jobs:
// a fixed interval between polls and a hard attempt cap. Exceeding the cap
// without reaching a terminal state is ErrPollTimeout.
type PollPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPollPolicy polls once per second for up to 30 attempts,
// giving a ~30s ceiling per transcription.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		Interval:    time.Second,
		MaxAttempts: 30,
	}
}

// errJobRunning marks a poll that observed a non-terminal status.
// Only this error is retried; everything else ends the loop immediately.
var errJobRunning = errors.New("stt: job still running")

// Transcriber drives a Provider through the full submit/poll lifecycle.
type Transcriber struct {
	provider Provider
	policy   PollPolicy
	logger   *slog.Logger
}

// NewTranscriber creates a transcriber around a provider.
func NewTranscriber(provider Provider, policy PollPolicy) *Transcriber {
	if policy.Interval <= 0 {
		policy.Interval = time.Second
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 30
	}
	return &Transcriber{
		provider: provider,
		policy:   policy,
		logger:   slog.Default().With("component", "stt.transcriber"),
	}
}

// NewTranscriberWithLogger creates a transcriber with a custom logger.
func NewTranscriberWithLogger(logger *slog.Logger, provider Provider, policy PollPolicy) *Transcriber {
	t := NewTranscriber(provider, policy)
	t.logger = logger.With("component", "stt.transcriber")
	return t
}

// Transcribe submits audio and waits for the transcript.
//
// The declared MIME type is normalized before submission. Errors are
// classified: ErrEmptyAudio for empty input, UploadError for rejected or
// malformed submissions, PollError for failed status requests, JobError for
// a terminal provider error, ErrPollTimeout when the attempt cap is
// exhausted, and ErrEmptyTranscript for a completed job with no text.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, declaredMIMEType string) (string, error) {
	if len(audio) == 0 {
		return "", ErrEmptyAudio
	}

	mimeType := NormalizeMIMEType(declaredMIMEType)

	start := time.Now()
	job, err := t.provider.Submit(ctx, audio, mimeType)
	if err != nil {
		return "", err
	}

	t.logger.Debug("job submitted",
		"job_id", job.ID,
		"bytes", len(audio),
		"mime_type", mimeType,
	)

	text, err := t.Await(ctx, job)
	if err != nil {
		return "", err
	}

	t.logger.Info("transcription complete",
		"job_id", job.ID,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// Await polls the job at the policy's fixed interval until it reaches a
// terminal state or the attempt cap is exhausted.
func (t *Transcriber) Await(ctx context.Context, job Job) (string, error) {
	var text string

	backoff := retry.WithMaxRetries(
		uint64(t.policy.MaxAttempts-1),
		retry.NewConstant(t.policy.Interval),
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		status, err := t.provider.Poll(ctx, job)
		if err != nil {
			// Failed status requests end the loop immediately.
			return err
		}

		switch status.Status {
		case StatusCompleted:
			text = status.Text
			return nil
		case StatusError:
			// Terminal provider errors are never retried.
			return &JobError{Message: status.Error}
		default:
			return retry.RetryableError(errJobRunning)
		}
	})

	if err != nil {
		if errors.Is(err, errJobRunning) {
			return "", ErrPollTimeout
		}
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}

// Health reports provider connectivity.
func (t *Transcriber) Health(ctx context.Context) error {
	return t.provider.Health(ctx)
}

// Close releases provider resources.
func (t *Transcriber) Close() error {
	return t.provider.Close()
}
