package tts

import (
	"context"
	"sync"
)

// Mock implements Provider for testing.
// All methods can be customized via function fields.
type Mock struct {
	// SynthesizeFunc is called when Synthesize is invoked.
	// If nil, returns a canned MP3-typed result.
	SynthesizeFunc func(ctx context.Context, text string) (*SpeechResult, error)

	// HealthFunc is called when Health is invoked.
	// If nil, returns nil (healthy).
	HealthFunc func(ctx context.Context) error

	// Tracking
	mu    sync.Mutex
	texts []string
}

// NewMock creates a mock provider that returns the given audio bytes.
func NewMock(audio []byte) *Mock {
	return &Mock{
		SynthesizeFunc: func(ctx context.Context, text string) (*SpeechResult, error) {
			return &SpeechResult{
				Audio:     audio,
				MediaType: MediaTypeMPEG,
				Status:    StatusOK,
				CharCount: len(text),
			}, nil
		},
	}
}

// MockWithError returns a mock whose Synthesize and Health always fail.
func MockWithError(err error) *Mock {
	return &Mock{
		SynthesizeFunc: func(ctx context.Context, text string) (*SpeechResult, error) {
			return nil, err
		},
		HealthFunc: func(ctx context.Context) error {
			return err
		},
	}
}

// Synthesize calls SynthesizeFunc and records the text.
func (m *Mock) Synthesize(ctx context.Context, text string) (*SpeechResult, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()

	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text)
	}
	return &SpeechResult{
		Audio:     []byte("mock audio"),
		MediaType: MediaTypeMPEG,
		Status:    StatusOK,
		CharCount: len(text),
	}, nil
}

// Health calls HealthFunc.
func (m *Mock) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// Close releases nothing.
func (m *Mock) Close() error {
	return nil
}

// Texts returns all synthesized texts in order.
func (m *Mock) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.texts))
	copy(result, m.texts)
	return result
}

// CallCount returns the number of Synthesize invocations.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.texts)
}

// Verify Mock implements Provider at compile time.
var _ Provider = (*Mock)(nil)
