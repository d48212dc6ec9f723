package tts_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/daroloh/voice-agent/pkg/tts"
)

func TestSynthesizerSuccess(t *testing.T) {
	audio := bytes.Repeat([]byte{0xFF}, 2048)
	synth := tts.NewSynthesizer(tts.NewMock(audio))

	result := synth.Synthesize(context.Background(), "hello world")
	if result.Status != tts.StatusOK {
		t.Fatalf("expected StatusOK, got %s", result.Status)
	}
	if !bytes.Equal(result.Audio, audio) {
		t.Error("expected provider audio to pass through")
	}
	if result.MediaType != tts.MediaTypeMPEG {
		t.Errorf("expected audio/mpeg, got %s", result.MediaType)
	}
}

func TestSynthesizerFallbackOnError(t *testing.T) {
	synth := tts.NewSynthesizer(tts.MockWithError(errors.New("api down")))

	result := synth.Synthesize(context.Background(), "hello world")
	if result.Status != tts.StatusFallbackSilent {
		t.Fatalf("expected fallback status, got %s", result.Status)
	}
	if result.MediaType != tts.MediaTypeWAV {
		t.Errorf("expected audio/wav fallback, got %s", result.MediaType)
	}
	if len(result.Audio) == 0 {
		t.Error("expected non-empty fallback clip")
	}
	if string(result.Audio[0:4]) != "RIFF" {
		t.Error("expected fallback clip to be a WAV file")
	}
}

func TestSynthesizerFallbackOnShortAudio(t *testing.T) {
	// 10 bytes is far below the plausibility threshold.
	synth := tts.NewSynthesizer(tts.NewMock([]byte("too short!")))

	result := synth.Synthesize(context.Background(), "hello")
	if result.Status != tts.StatusFallbackSilent {
		t.Fatalf("expected fallback for short audio, got %s", result.Status)
	}
}

func TestSynthesizerMinBytesOverride(t *testing.T) {
	audio := []byte("tiny clip")
	synth := tts.NewSynthesizer(tts.NewMock(audio), tts.WithMinAudioBytes(4))

	result := synth.Synthesize(context.Background(), "hello")
	if result.Status != tts.StatusOK {
		t.Fatalf("expected lowered threshold to accept audio, got %s", result.Status)
	}
}

func TestSynthesizerHealthDelegates(t *testing.T) {
	down := errors.New("unreachable")
	synth := tts.NewSynthesizer(tts.MockWithError(down))

	if err := synth.Health(context.Background()); !errors.Is(err, down) {
		t.Errorf("expected provider health error, got %v", err)
	}
}
