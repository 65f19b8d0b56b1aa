package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/notesum/core"
	"github.com/poiesic/notesum/storage"
)

// Runner processes a list of documents one after another.
type Runner struct {
	processor *Processor
	ledger    storage.RunRepository
	progress  io.Writer
	model     string
	dryRun    bool
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithLedger records every run in repo.
func WithLedger(repo storage.RunRepository) Option {
	return func(r *Runner) error {
		r.ledger = repo
		return nil
	}
}

// WithProgress writes progress lines to w after each document.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) error {
		r.progress = w
		return nil
	}
}

// WithModel names the generation model in recorded runs.
func WithModel(model string) Option {
	return func(r *Runner) error {
		r.model = model
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a batch runner around processor.
func NewRunner(processor *Processor, opts ...Option) (*Runner, error) {
	if processor == nil {
		return nil, errors.New("processor is required")
	}
	r := &Runner{
		processor: processor,
		model:     "unknown",
		dryRun:    processor.config.DryRun,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.logger = r.logger.With("component", "batch")
	return r, nil
}

// Run processes ids in input order and returns one result per document.
// Per-document failures are recorded in the results. Only context
// cancellation stops the loop early, in which case the partial run is
// returned together with the context error.
func (r *Runner) Run(ctx context.Context, ids []string) (*core.Run, error) {
	run := &core.Run{
		StartedAt: r.now().UTC(),
		Model:     r.model,
		DryRun:    r.dryRun,
		Results:   make([]*core.Result, 0, len(ids)),
	}
	run.ID = core.NewRunID(run.Model, run.StartedAt)

	var tracker *ProgressTracker
	if r.progress != nil {
		tracker = NewProgressTracker(r.progress, len(ids))
		tracker.Start()
	}

	var runErr error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		run.Results = append(run.Results, r.processor.Process(ctx, id))
		if tracker != nil {
			tracker.Increment()
		}
	}

	success, skipped, failed := run.Counts()
	r.logger.Info("batch complete",
		"run", run.ID.String(),
		"documents", len(run.Results),
		"success", success,
		"skipped", skipped,
		"failed", failed)

	if r.ledger != nil {
		// The ledger outlives the caller's cancellation.
		if _, err := r.ledger.SaveRun(context.WithoutCancel(ctx), run); err != nil {
			r.logger.Warn("failed to record run", "run", run.ID.String(), "error", err)
			if runErr == nil {
				runErr = fmt.Errorf("record run: %w", err)
			}
		}
	}

	return run, runErr
}
