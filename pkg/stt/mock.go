package stt

import (
	"context"
	"sync"
	"time"
)

// Mock implements Provider for testing.
// All methods can be customized via function fields.
type Mock struct {
	// SubmitFunc is called when Submit is invoked.
	// If nil, returns a fixed job.
	SubmitFunc func(ctx context.Context, audio []byte, mimeType string) (Job, error)

	// PollFunc is called when Poll is invoked.
	// If nil, returns a completed job with placeholder text.
	PollFunc func(ctx context.Context, job Job) (JobStatus, error)

	// HealthFunc is called when Health is invoked.
	// If nil, returns nil (healthy).
	HealthFunc func(ctx context.Context) error

	// Tracking
	mu    sync.Mutex
	calls []MockCall
}

// MockCall records a method invocation for verification.
type MockCall struct {
	Method   string
	JobID    string
	MIMEType string
	Bytes    int
	Time     time.Time
}

// NewMock creates a mock provider that completes immediately.
func NewMock() *Mock {
	return &Mock{
		SubmitFunc: func(ctx context.Context, audio []byte, mimeType string) (Job, error) {
			return Job{ID: "mock-job"}, nil
		},
		PollFunc: func(ctx context.Context, job Job) (JobStatus, error) {
			return JobStatus{Status: StatusCompleted, Text: "mock transcript"}, nil
		},
	}
}

// Submit calls SubmitFunc and records the call.
func (m *Mock) Submit(ctx context.Context, audio []byte, mimeType string) (Job, error) {
	m.record(MockCall{Method: "Submit", MIMEType: mimeType, Bytes: len(audio)})
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, audio, mimeType)
	}
	return Job{ID: "mock-job"}, nil
}

// Poll calls PollFunc and records the call.
func (m *Mock) Poll(ctx context.Context, job Job) (JobStatus, error) {
	m.record(MockCall{Method: "Poll", JobID: job.ID})
	if m.PollFunc != nil {
		return m.PollFunc(ctx, job)
	}
	return JobStatus{Status: StatusCompleted, Text: "mock transcript"}, nil
}

// Health calls HealthFunc and records the call.
func (m *Mock) Health(ctx context.Context) error {
	m.record(MockCall{Method: "Health"})
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// Close records the call.
func (m *Mock) Close() error {
	m.record(MockCall{Method: "Close"})
	return nil
}

func (m *Mock) record(call MockCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call.Time = time.Now()
	m.calls = append(m.calls, call)
}

// Calls returns all recorded method calls.
func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]MockCall, len(m.calls))
	copy(result, m.calls)
	return result
}

// CallCount returns the number of times a method was called.
func (m *Mock) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.calls {
		if c.Method == method {
			count++
		}
	}
	return count
}

// Reset clears all recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// Verify Mock implements Provider at compile time.
var _ Provider = (*Mock)(nil)
