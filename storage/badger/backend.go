package badger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

// Backend owns the BadgerDB instance behind the run ledger.
type Backend struct {
	db     *badger.DB
	logger *slog.Logger
}

// ledgerLogger routes badger's log output through slog. Badger is chatty at
// info level, so info lines are demoted to debug.
type ledgerLogger struct {
	logger *slog.Logger
}

var _ badger.Logger = (*ledgerLogger)(nil)

func (l *ledgerLogger) Errorf(msg string, items ...any) {
	l.logger.Error(fmt.Sprintf(msg, items...))
}

func (l *ledgerLogger) Warningf(msg string, items ...any) {
	l.logger.Warn(fmt.Sprintf(msg, items...))
}

func (l *ledgerLogger) Infof(msg string, items ...any) {
	l.logger.Debug(fmt.Sprintf(msg, items...))
}

func (l *ledgerLogger) Debugf(msg string, items ...any) {
	l.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenBackend opens the ledger database in dir, creating the directory when
// needed. With inMemory set, dir is ignored and nothing touches disk.
func OpenBackend(dir string, inMemory bool) (*Backend, error) {
	opts, err := ledgerOptions(dir, inMemory)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "ledger")
	opts.Logger = &ledgerLogger{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	return &Backend{db: db, logger: logger}, nil
}

func ledgerOptions(dir string, inMemory bool) (badger.Options, error) {
	if inMemory {
		return badger.DefaultOptions("").WithInMemory(true), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return badger.Options{}, fmt.Errorf("create ledger directory: %w", err)
	}
	return badger.DefaultOptions(dir), nil
}

// Close closes the database. Closing twice is a no-op.
func (b *Backend) Close() error {
	if b.db.IsClosed() {
		return nil
	}
	return b.db.Close()
}

// IsClosed reports whether the database has been closed.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// View runs fn in a read-only transaction.
func (b *Backend) View(fn func(tx *badger.Txn) error) error {
	return b.db.View(fn)
}

// Update runs fn in a read-write transaction, committing it when fn returns
// nil and discarding every write otherwise.
func (b *Backend) Update(fn func(tx *badger.Txn) error) error {
	return b.db.Update(fn)
}
