package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Document is a note loaded from a DocumentStore.
type Document struct {
	// Path is the resolved location of the note.
	Path string

	// Content is the full note text.
	Content string

	// Mode is the file mode restored when the note is written back.
	Mode fs.FileMode
}

// DocumentStore resolves, reads and writes notes.
type DocumentStore interface {
	// Resolve maps a caller-supplied identifier to a location.
	// Returns ErrDocumentNotFound when nothing exists there.
	Resolve(ctx context.Context, id string) (string, error)

	// Load reads the note at a resolved location.
	Load(ctx context.Context, path string) (*Document, error)

	// Save replaces the note with doc.Content.
	Save(ctx context.Context, doc *Document) error
}

// FileStore is a DocumentStore over the local filesystem.
// Relative identifiers are resolved against Root, or the working directory
// when Root is empty.
type FileStore struct {
	Root string
}

var _ DocumentStore = (*FileStore)(nil)

// NewFileStore creates a filesystem store rooted at root.
func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

// Resolve returns the path for id if it exists.
func (s *FileStore) Resolve(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := id
	if s.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.Root, path)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
		}
		return "", err
	}
	return path, nil
}

// Load reads the file at path.
func (s *FileStore) Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Content: string(data), Mode: info.Mode().Perm()}, nil
}

// Save writes doc.Content through a temporary file in the same directory and
// renames it over the original, so readers never observe a partial note.
func (s *FileStore) Save(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir, name := filepath.Split(doc.Path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(doc.Content); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}

	mode := doc.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	if err := os.Rename(tmpName, doc.Path); err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	return nil
}
