package stt_test

import (
	"testing"

	"github.com/daroloh/voice-agent/pkg/stt"
)

func TestNormalizeMIMEType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		want     string
	}{
		{"codec suffix stripped", "audio/webm;codecs=opus", "audio/webm"},
		{"supported passthrough", "audio/mpeg", "audio/mpeg"},
		{"wav passthrough", "audio/wav", "audio/wav"},
		{"ogg passthrough", "audio/ogg", "audio/ogg"},
		{"mp4 passthrough", "audio/mp4", "audio/mp4"},
		{"unsupported replaced", "audio/flac", "audio/webm"},
		{"unsupported with suffix replaced", "audio/x-aiff;rate=44100", "audio/webm"},
		{"empty replaced", "", "audio/webm"},
		{"whitespace trimmed", "  audio/wav ; codecs=1 ", "audio/wav"},
		{"case folded", "Audio/WAV", "audio/wav"},
		{"garbage replaced", "not-a-mime-type", "audio/webm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stt.NormalizeMIMEType(tt.declared)
			if got != tt.want {
				t.Errorf("NormalizeMIMEType(%q) = %q, want %q", tt.declared, got, tt.want)
			}
		})
	}
}
