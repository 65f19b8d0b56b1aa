// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.TextGenerator and
// ai.AIProvider for use in unit tests. The mocks allow tests to run without
// a generation service and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	gen := mock.NewMockGenerator()
//	text, err := gen.Generate(ctx, []ai.Message{ai.UserMessage("hello")})
//	// text == "summary: hello"
//
//	// Custom behavior injection
//	gen := mock.NewMockGenerator().
//	    WithGenerateFunc(func(ctx context.Context, msgs []ai.Message) (string, error) {
//	        return "", errors.New("service unavailable")
//	    })
//
//	// Inspect calls
//	count := gen.CallCount()
//	prompts := gen.Prompts()
//
// MockGenerator is safe for concurrent use, so it can back the concurrent
// map step of the summarizer.
package mock
