package ai

import "context"

// TextGenerator produces text for a conversation of role-tagged messages.
// Implementations must be thread-safe for concurrent use.
type TextGenerator interface {
	// Generate sends messages to the model and returns the generated text.
	// Returns an error if the service cannot be reached, rejects the request,
	// or returns no content.
	Generate(ctx context.Context, messages []Message) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
type AIProvider interface {
	// TextGenerator returns the text generation service.
	// The returned TextGenerator is safe for concurrent use.
	TextGenerator() TextGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
