package stt

import "strings"

// DefaultMIMEType is substituted when the declared type is missing or not
// on the supported list.
const DefaultMIMEType = "audio/webm"

// supportedMIMETypes is the allow-list of content types the transcription
// provider accepts for raw uploads.
var supportedMIMETypes = map[string]bool{
	"audio/webm": true,
	"audio/mpeg": true,
	"audio/wav":  true,
	"audio/ogg":  true,
	"audio/mp4":  true,
}

// NormalizeMIMEType prepares a declared content type for submission.
// Parameter suffixes such as codec strings ("audio/webm;codecs=opus") are
// stripped, and anything outside the supported list is replaced with
// DefaultMIMEType. Normalization happens before the provider call; the
// provider is strict about declared content types.
func NormalizeMIMEType(declared string) string {
	mimeType := declared
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	if !supportedMIMETypes[mimeType] {
		return DefaultMIMEType
	}
	return mimeType
}
