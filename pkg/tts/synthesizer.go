package tts

import (
	"context"
	"log/slog"
)

// MinAudioBytes is the smallest provider response accepted as real
// speech. Anything shorter is treated as a failed synthesis.
const MinAudioBytes = 1024

// Synthesizer wraps a Provider and guarantees a playable result.
// When the provider fails or returns an implausibly small buffer,
// the result degrades to a silent WAV clip instead of an error.
type Synthesizer struct {
	provider Provider
	minBytes int
	logger   *slog.Logger
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithMinAudioBytes overrides the minimum accepted audio size.
func WithMinAudioBytes(n int) SynthesizerOption {
	return func(s *Synthesizer) {
		s.minBytes = n
	}
}

// WithSynthesizerLogger sets the structured logger.
func WithSynthesizerLogger(logger *slog.Logger) SynthesizerOption {
	return func(s *Synthesizer) {
		s.logger = logger.With("component", "tts.synthesizer")
	}
}

// NewSynthesizer creates a Synthesizer around the given provider.
func NewSynthesizer(provider Provider, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		provider: provider,
		minBytes: MinAudioBytes,
		logger:   slog.Default().With("component", "tts.synthesizer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize converts text to speech. It never fails: on provider error
// or a too-small response the result is a silent WAV with
// StatusFallbackSilent.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) *SpeechResult {
	result, err := s.provider.Synthesize(ctx, text)
	if err != nil {
		s.logger.Warn("synthesis failed, using silent fallback", "error", err, "chars", len(text))
		return s.fallback(text)
	}

	if len(result.Audio) < s.minBytes {
		s.logger.Warn("synthesis returned short audio, using silent fallback",
			"bytes", len(result.Audio),
			"min_bytes", s.minBytes,
		)
		return s.fallback(text)
	}

	return result
}

// Health reports the underlying provider's health. The fallback keeps
// Synthesize working regardless.
func (s *Synthesizer) Health(ctx context.Context) error {
	return s.provider.Health(ctx)
}

// Close releases the underlying provider.
func (s *Synthesizer) Close() error {
	return s.provider.Close()
}

func (s *Synthesizer) fallback(text string) *SpeechResult {
	return &SpeechResult{
		Audio:     Silence(),
		MediaType: MediaTypeWAV,
		Status:    StatusFallbackSilent,
		CharCount: len(text),
	}
}
