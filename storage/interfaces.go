package storage

import (
	"context"

	"github.com/poiesic/notesum/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close closes the storage backend and releases resources.
	Close() error
}

// RunRepository records batch runs and their per-document results.
type RunRepository interface {
	Repository

	// SaveRun persists a run and all of its results.
	// A zero ID is replaced with core.NewRunID(Model, StartedAt).
	// Saving a run with an existing ID replaces it.
	// Returns the run with its ID populated.
	SaveRun(ctx context.Context, run *core.Run) (*core.Run, error)

	// GetRun retrieves a run with its results in their original order.
	// Returns ErrNotFound if the run doesn't exist.
	GetRun(ctx context.Context, id core.ID) (*core.Run, error)

	// ListRuns retrieves up to limit runs, most recent first.
	// Results are loaded for every returned run.
	ListRuns(ctx context.Context, limit int) ([]*core.Run, error)

	// DeleteRun removes a run and its results.
	// Returns ErrNotFound if the run doesn't exist.
	DeleteRun(ctx context.Context, id core.ID) error
}
