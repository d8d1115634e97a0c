package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/gardenmate/internal/generation"
)

// MockProvider implements generation.Provider for testing
type MockProvider struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// mu protects the call tracking state for concurrent test cases
	mu      sync.Mutex
	prompts []string
}

// Complete implements the generation.Provider interface
func (m *MockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt)
	}
	return m.Text, m.Err
}

// Calls returns how many times Complete was called.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt passed to Complete.
func (m *MockProvider) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears the call tracking state
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = nil
}

// NewMockProviderWithText creates a MockProvider that always answers text
func NewMockProviderWithText(text string) *MockProvider {
	return &MockProvider{Text: text}
}

// NewMockProviderWithError creates a MockProvider that always fails with err
func NewMockProviderWithError(err error) *MockProvider {
	return &MockProvider{Err: err}
}

// MockProviderWithTransportFailure simulates a refused connection
func MockProviderWithTransportFailure() *MockProvider {
	return NewMockProviderWithError(
		fmt.Errorf("%w: dial tcp 127.0.0.1:443: connect: connection refused", generation.ErrTransport))
}

// MockProviderWithServerError simulates an HTTP 500 from the provider
func MockProviderWithServerError() *MockProvider {
	return NewMockProviderWithError(fmt.Errorf("%w: status 500", generation.ErrProtocol))
}

// MockProviderWithMalformedBody simulates an unparseable response body
func MockProviderWithMalformedBody() *MockProvider {
	return NewMockProviderWithError(fmt.Errorf("%w: body is not valid JSON", generation.ErrShapeMismatch))
}

// MockProviderThatBlocks waits until its context is done
func MockProviderThatBlocks() *MockProvider {
	return &MockProvider{
		CompleteFn: func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
}
