package testutil

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ahitagnied/lotus-app/internal/app/api"
)

// MockTranscriber is a testify mock of api.Transcriber. Besides the usual
// expectations it records what was on disk at call time, so tests can assert
// on artifact contents after the artifact has been released.
type MockTranscriber struct {
	mock.Mock

	mu    sync.Mutex
	calls []TranscriptionCall
}

// TranscriptionCall is one observed Transcript invocation
type TranscriptionCall struct {
	InputFilePath string
	Content       []byte
	Existed       bool
}

// NewMockTranscriber creates a MockTranscriber bound to t
func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	content, err := os.ReadFile(inputFilePath)

	m.mu.Lock()
	m.calls = append(m.calls, TranscriptionCall{
		InputFilePath: inputFilePath,
		Content:       content,
		Existed:       err == nil,
	})
	m.mu.Unlock()

	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}

// ExpectTranscript sets up an expectation for any path
func (m *MockTranscriber) ExpectTranscript(response string, err error) *mock.Call {
	return m.On("Transcript", mock.Anything, mock.AnythingOfType("string")).Return(response, err)
}

// Observed returns a copy of the observed calls
func (m *MockTranscriber) Observed() []TranscriptionCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]TranscriptionCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// LastCall returns the most recent call, or nil
func (m *MockTranscriber) LastCall() *TranscriptionCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.calls) == 0 {
		return nil
	}
	call := m.calls[len(m.calls)-1]
	return &call
}

// Interface compliance check
var _ api.Transcriber = (*MockTranscriber)(nil)
