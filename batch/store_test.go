package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreResolve(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, "a.md", "x")
	store := NewFileStore(dir)
	ctx := context.Background()

	path, err := store.Resolve(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.md"), path)

	abs := filepath.Join(dir, "a.md")
	path, err = NewFileStore("/elsewhere").Resolve(ctx, abs)
	require.NoError(t, err)
	assert.Equal(t, abs, path)

	_, err = store.Resolve(ctx, "missing.md")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestFileStoreRoundTripPreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "a.md", "before")
	require.NoError(t, os.Chmod(path, 0o640))
	store := NewFileStore("")
	ctx := context.Background()

	doc, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "before", doc.Content)
	assert.Equal(t, os.FileMode(0o640), doc.Mode)

	doc.Content = "after"
	require.NoError(t, store.Save(ctx, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "after", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestFileStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewFileStore("")
	_, err := store.Resolve(ctx, "a.md")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.Load(ctx, "a.md")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, &Document{Path: "a.md"}), context.Canceled)
}
