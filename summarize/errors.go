package summarize

import "errors"

var (
	// ErrGeneratorRequired is returned when a text generator is not provided.
	ErrGeneratorRequired = errors.New("text generator required")

	// ErrNoChunks is returned when Summarize is called without chunks.
	ErrNoChunks = errors.New("no chunks to summarize")

	// ErrGenerationPanic is returned when a generation call panics.
	ErrGenerationPanic = errors.New("generation panicked")
)
