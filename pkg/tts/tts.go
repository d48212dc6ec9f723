// Package tts converts reply text to speech.
//
// The primary backend is the OpenAI speech API. The Synthesizer wraps a
// Provider and degrades to a short silent WAV clip when synthesis fails,
// so a voice turn always ships some playable audio.
//
// Example usage:
//
//	provider, _ := tts.NewOpenAI(tts.WithAPIKey(os.Getenv("OPENAI_API_KEY")))
//	defer provider.Close()
//
//	synth := tts.NewSynthesizer(provider)
//	result := synth.Synthesize(ctx, "Hello world")
//	// result.Audio is MP3 on success, a silent WAV on fallback
package tts

import (
	"context"
)

// Provider defines the speech synthesis interface.
type Provider interface {
	// Synthesize converts text to audio, returning the complete audio buffer.
	Synthesize(ctx context.Context, text string) (*SpeechResult, error)

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Close releases any resources held by the provider.
	Close() error
}

// Status reports how a synthesis result was produced.
type Status string

const (
	// StatusOK means the provider returned real synthesized speech.
	StatusOK Status = "ok"

	// StatusFallbackSilent means synthesis failed and the result carries
	// a generated silent clip instead.
	StatusFallbackSilent Status = "fallback_silent"
)

// Media types for synthesized audio.
const (
	MediaTypeMPEG = "audio/mpeg"
	MediaTypeWAV  = "audio/wav"
)

// SpeechResult is a complete synthesis result.
type SpeechResult struct {
	// Audio contains the encoded audio data.
	Audio []byte

	// MediaType is the MIME type of Audio.
	MediaType string

	// Status reports whether Audio is real speech or a silent fallback.
	Status Status

	// CharCount is the number of characters synthesized.
	CharCount int

	// LatencyMs is the provider round-trip time in milliseconds.
	LatencyMs int64
}
