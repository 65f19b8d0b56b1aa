package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/notesum/core"
	"github.com/poiesic/notesum/storage"
)

// RunRepository implements storage.RunRepository for BadgerDB.
type RunRepository struct {
	backend *Backend
}

var _ storage.RunRepository = (*RunRepository)(nil)

// NewRunRepository creates a new RunRepository on an open backend.
func NewRunRepository(backend *Backend) (*RunRepository, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	return &RunRepository{backend: backend}, nil
}

// OpenRunRepository opens the ledger at path and returns a repository that
// owns the backend. Closing the repository closes the database.
func OpenRunRepository(path string) (storage.RunRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &RunRepository{backend: backend}, nil
}

// Close closes the underlying backend.
func (r *RunRepository) Close() error {
	return r.backend.Close()
}

// SaveRun persists the run header, its start time index entry and every result.
func (r *RunRepository) SaveRun(ctx context.Context, run *core.Run) (*core.Run, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	if err := core.ValidateRun(run); err != nil {
		return nil, err
	}
	if run.ID == 0 {
		run.ID = core.NewRunID(run.Model, run.StartedAt)
	}

	err := r.backend.Update(func(tx *badger.Txn) error {
		if err := r.deleteRun(tx, run.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if err := tx.Set(makeRunKey(run.ID), storage.MarshalRunHeader(run.Header())); err != nil {
			return err
		}
		if err := tx.Set(makeRunDateKey(run.StartedAt, run.ID), storage.MarshalID(run.ID)); err != nil {
			return err
		}
		for i, res := range run.Results {
			if err := tx.Set(makeRunResultKey(run.ID, i), storage.MarshalResult(res)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save run %s: %w", run.ID, err)
	}

	r.backend.logger.Debug("saved run", "run", run.ID.String(), "results", len(run.Results))
	return run, nil
}

// GetRun retrieves a run with all of its results.
func (r *RunRepository) GetRun(ctx context.Context, id core.ID) (*core.Run, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}

	var run *core.Run
	err := r.backend.View(func(tx *badger.Txn) error {
		var err error
		run, err = r.readRun(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns walks the start time index backwards to return the newest runs first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*core.Run, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", storage.ErrInvalidQuery, limit)
	}

	var runs []*core.Run
	err := r.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		prefix := []byte(runDatePrefix + ":")
		opts.Prefix = prefix

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Reverse seeks need a key past every entry under the prefix.
		seek := append(append([]byte{}, prefix...), 0xFF)
		for iter.Seek(seek); iter.Valid() && len(runs) < limit; iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			run, err := r.readRun(tx, id)
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// DeleteRun removes a run header, its index entry and its results.
func (r *RunRepository) DeleteRun(ctx context.Context, id core.ID) error {
	if err := r.check(ctx); err != nil {
		return err
	}
	if err := r.backend.Update(func(tx *badger.Txn) error {
		return r.deleteRun(tx, id)
	}); err != nil {
		return err
	}
	r.backend.logger.Debug("deleted run", "run", id.String())
	return nil
}

func (r *RunRepository) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return nil
}

// readHeader returns storage.ErrNotFound for unknown runs.
func (r *RunRepository) readHeader(tx *badger.Txn, id core.ID) (core.RunHeader, error) {
	item, err := tx.Get(makeRunKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return core.RunHeader{}, fmt.Errorf("run %s: %w", id, storage.ErrNotFound)
		}
		return core.RunHeader{}, err
	}

	var h core.RunHeader
	err = item.Value(func(val []byte) error {
		var err error
		h, err = storage.UnmarshalRunHeader(val)
		return err
	})
	return h, err
}

func (r *RunRepository) readRun(tx *badger.Txn, id core.ID) (*core.Run, error) {
	h, err := r.readHeader(tx, id)
	if err != nil {
		return nil, err
	}

	run := &core.Run{
		ID:        h.ID,
		StartedAt: h.StartedAt,
		Model:     h.Model,
		DryRun:    h.DryRun,
		Results:   make([]*core.Result, 0, h.ResultCount),
	}

	opts := badger.DefaultIteratorOptions
	opts.Prefix = makePartialRunResultKey(id)
	iter := tx.NewIterator(opts)
	defer iter.Close()

	// Result keys end in a big-endian index, so prefix order is input order.
	for iter.Rewind(); iter.Valid(); iter.Next() {
		var res *core.Result
		if err := iter.Item().Value(func(val []byte) error {
			var err error
			res, err = storage.UnmarshalResult(val)
			return err
		}); err != nil {
			return nil, err
		}
		run.Results = append(run.Results, res)
	}

	if len(run.Results) != h.ResultCount {
		return nil, fmt.Errorf("%w: run %s has %d of %d results",
			storage.ErrSerializationFailed, id, len(run.Results), h.ResultCount)
	}
	return run, nil
}

func (r *RunRepository) deleteRun(tx *badger.Txn, id core.ID) error {
	h, err := r.readHeader(tx, id)
	if err != nil {
		return err
	}

	if err := tx.Delete(makeRunKey(id)); err != nil {
		return err
	}
	if err := tx.Delete(makeRunDateKey(h.StartedAt, id)); err != nil {
		return err
	}
	for i := 0; i < h.ResultCount; i++ {
		if err := tx.Delete(makeRunResultKey(id, i)); err != nil {
			return err
		}
	}
	return nil
}
