package tts

import (
	"encoding/binary"
	"time"
)

// Silent clip parameters. A tenth of a second of 16kHz mono PCM16 is
// enough for players to treat the response as a valid, finished clip.
const (
	SilenceDuration   = 100 * time.Millisecond
	SilenceSampleRate = 16000
	silenceBitDepth   = 16
	silenceChannels   = 1
)

// SilentWAV returns a complete WAV file containing silence of the given
// duration at the given sample rate, 16-bit mono.
func SilentWAV(duration time.Duration, sampleRate int) []byte {
	samples := int(duration.Seconds() * float64(sampleRate))
	bytesPerSample := silenceBitDepth / 8
	dataSize := samples * silenceChannels * bytesPerSample
	byteRate := sampleRate * silenceChannels * bytesPerSample
	blockAlign := silenceChannels * bytesPerSample

	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], silenceChannels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], silenceBitDepth)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	// Sample bytes are already zero, which is PCM16 silence.
	return buf
}

// Silence returns the default fallback clip.
func Silence() []byte {
	return SilentWAV(SilenceDuration, SilenceSampleRate)
}
