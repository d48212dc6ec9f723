package tts

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestSilentWAVHeader(t *testing.T) {
	wav := SilentWAV(100*time.Millisecond, 16000)

	// 0.1s * 16000Hz * 2 bytes/sample mono = 3200 data bytes
	wantData := 3200
	if len(wav) != 44+wantData {
		t.Fatalf("expected %d bytes, got %d", 44+wantData, len(wav))
	}

	if string(wav[0:4]) != "RIFF" {
		t.Errorf("expected RIFF magic, got %q", wav[0:4])
	}
	if string(wav[8:12]) != "WAVE" {
		t.Errorf("expected WAVE magic, got %q", wav[8:12])
	}
	if string(wav[12:16]) != "fmt " {
		t.Errorf("expected fmt chunk, got %q", wav[12:16])
	}
	if string(wav[36:40]) != "data" {
		t.Errorf("expected data chunk, got %q", wav[36:40])
	}

	if got := binary.LittleEndian.Uint32(wav[4:8]); got != uint32(36+wantData) {
		t.Errorf("expected RIFF size %d, got %d", 36+wantData, got)
	}
	if got := binary.LittleEndian.Uint16(wav[20:22]); got != 1 {
		t.Errorf("expected PCM format 1, got %d", got)
	}
	if got := binary.LittleEndian.Uint16(wav[22:24]); got != 1 {
		t.Errorf("expected mono, got %d channels", got)
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != 16000 {
		t.Errorf("expected 16000Hz, got %d", got)
	}
	if got := binary.LittleEndian.Uint16(wav[34:36]); got != 16 {
		t.Errorf("expected 16-bit samples, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(wav[40:44]); got != uint32(wantData) {
		t.Errorf("expected data size %d, got %d", wantData, got)
	}

	// All sample bytes are zero.
	for i, b := range wav[44:] {
		if b != 0 {
			t.Fatalf("expected silence, found byte %d at offset %d", b, 44+i)
		}
	}
}

func TestSilenceDefaults(t *testing.T) {
	if got := Silence(); len(got) != 44+3200 {
		t.Errorf("unexpected default clip size %d", len(got))
	}
}
