package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/notesum/ai"
)

// MockGenerator is a test double for ai.TextGenerator.
// It records every call and allows custom behavior injection via GenerateFunc.
// Safe for concurrent use.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, Generate echoes the last message content prefixed with "summary: ".
	GenerateFunc func(ctx context.Context, messages []ai.Message) (string, error)

	mu    sync.Mutex
	calls [][]ai.Message
}

// NewMockGenerator creates a mock generator with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// WithGenerateFunc sets GenerateFunc and returns the mock for chaining.
func (m *MockGenerator) WithGenerateFunc(fn func(ctx context.Context, messages []ai.Message) (string, error)) *MockGenerator {
	m.GenerateFunc = fn
	return m
}

// Generate records the call and returns generated text.
func (m *MockGenerator) Generate(ctx context.Context, messages []ai.Message) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]ai.Message(nil), messages...))
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, messages)
	}

	if len(messages) == 0 {
		return "", nil
	}
	last := messages[len(messages)-1].Content
	return "summary: " + strings.TrimSpace(last), nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded message lists in call order.
func (m *MockGenerator) Calls() [][]ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]ai.Message(nil), m.calls...)
}

// Prompts returns the content of the last message of every recorded call.
func (m *MockGenerator) Prompts() []string {
	calls := m.Calls()
	prompts := make([]string, 0, len(calls))
	for _, msgs := range calls {
		if len(msgs) > 0 {
			prompts = append(prompts, msgs[len(msgs)-1].Content)
		}
	}
	return prompts
}

// Reset clears recorded calls and custom functions.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.GenerateFunc = nil
}
