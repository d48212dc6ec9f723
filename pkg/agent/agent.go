// Package agent orchestrates a full voice turn: transcribe the uploaded
// audio, generate a reply against the shared conversation history, commit
// the exchange, and synthesize the reply to speech.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daroloh/voice-agent/pkg/convo"
	"github.com/daroloh/voice-agent/pkg/tts"
)

// ErrInternal is returned when a turn fails for reasons that should not
// reach the caller in detail.
var ErrInternal = errors.New("agent: internal error")

// Transcriber converts audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
	Health(ctx context.Context) error
	Close() error
}

// Generator produces an assistant reply for a user utterance.
// BackendHealth pings the model backends only, excluding any fallback
// tier that answers unconditionally.
type Generator interface {
	Generate(ctx context.Context, userText string) (string, error)
	Health(ctx context.Context) error
	BackendHealth(ctx context.Context) error
	Close() error
}

// Synthesizer converts reply text to speech. It never fails; degraded
// results carry a fallback status instead.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) *tts.SpeechResult
	Health(ctx context.Context) error
	Close() error
}

// TurnResult is the outcome of one completed voice turn.
type TurnResult struct {
	// RequestID identifies this turn in logs and response headers.
	RequestID string

	// UserText is the transcript of the uploaded audio.
	UserText string

	// ReplyText is the generated assistant reply.
	ReplyText string

	// Audio is the synthesized reply, or a silent clip on TTS fallback.
	Audio []byte

	// MediaType is the MIME type of Audio.
	MediaType string

	// SpeechStatus reports whether Audio is real speech or a fallback.
	SpeechStatus tts.Status
}

// HealthReport describes per-stage backend availability. Generation
// distinguishes "the stage can answer" (always true with a rule-based
// floor configured) from "a model backend is reachable".
type HealthReport struct {
	Transcription     bool `json:"transcription"`
	Generation        bool `json:"generation"`
	GenerationBackend bool `json:"generation_backend"`
	Synthesis         bool `json:"synthesis"`
}

// Agent wires the pipeline stages around the shared conversation store.
type Agent struct {
	transcriber Transcriber
	generator   Generator
	synthesizer Synthesizer
	store       *convo.Store
	logger      *slog.Logger
}

// AgentOption configures an Agent.
type AgentOption func(*Agent)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) AgentOption {
	return func(a *Agent) {
		a.logger = logger.With("component", "agent")
	}
}

// New creates an Agent over the pipeline stages and the shared store.
func New(t Transcriber, g Generator, s Synthesizer, store *convo.Store, opts ...AgentOption) *Agent {
	a := &Agent{
		transcriber: t,
		generator:   g,
		synthesizer: s,
		store:       store,
		logger:      slog.Default().With("component", "agent"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SubmitTurn runs one full voice turn.
//
// The exchange is appended to the conversation only after both the
// transcript and the reply exist, so a failed turn leaves no partial
// history behind. Synthesis happens after the commit and cannot fail.
func (a *Agent) SubmitTurn(ctx context.Context, audio []byte, mimeType string) (result *TurnResult, err error) {
	requestID := uuid.NewString()
	logger := a.logger.With("request_id", requestID)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic during turn", "panic", r)
			result, err = nil, ErrInternal
		}
	}()

	start := time.Now()

	userText, err := a.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		logger.Warn("transcription failed", "error", err)
		return nil, err
	}

	replyText, err := a.generator.Generate(ctx, userText)
	if err != nil {
		logger.Warn("reply generation failed", "error", err)
		return nil, err
	}

	a.store.AppendExchange(userText, replyText)

	speech := a.synthesizer.Synthesize(ctx, replyText)

	logger.Info("turn complete",
		"user_chars", len(userText),
		"reply_chars", len(replyText),
		"audio_bytes", len(speech.Audio),
		"speech_status", speech.Status,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &TurnResult{
		RequestID:    requestID,
		UserText:     userText,
		ReplyText:    replyText,
		Audio:        speech.Audio,
		MediaType:    speech.MediaType,
		SpeechStatus: speech.Status,
	}, nil
}

// Reset clears the shared conversation history.
func (a *Agent) Reset() {
	a.store.Reset()
	a.logger.Info("conversation reset")
}

// Turns returns the number of stored conversation turns.
func (a *Agent) Turns() int {
	return a.store.Len()
}

// Health pings each pipeline stage.
func (a *Agent) Health(ctx context.Context) HealthReport {
	return HealthReport{
		Transcription:     a.transcriber.Health(ctx) == nil,
		Generation:        a.generator.Health(ctx) == nil,
		GenerationBackend: a.generator.BackendHealth(ctx) == nil,
		Synthesis:         a.synthesizer.Health(ctx) == nil,
	}
}

// Close releases all pipeline stages.
func (a *Agent) Close() error {
	var firstErr error
	for _, c := range []interface{ Close() error }{a.transcriber, a.generator, a.synthesizer} {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
