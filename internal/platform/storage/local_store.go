package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
)

// AferoStore is a file store rooted at a single directory. Backed by afero
// so tests can swap the OS filesystem for an in-memory one.
type AferoStore struct {
	fs afero.Fs
}

// NewLocalStore creates a store over the OS filesystem rooted at root.
func NewLocalStore(root string) *AferoStore {
	return &AferoStore{fs: afero.NewBasePathFs(afero.NewOsFs(), root)}
}

// NewMemStore creates an in-memory store, used in tests.
func NewMemStore() *AferoStore {
	return &AferoStore{fs: afero.NewMemMapFs()}
}

var _ portssvc.FileStore = (*AferoStore)(nil)

// Save writes the stream to the relative path, creating parent directories,
// and returns the relative path handle.
func (s *AferoStore) Save(_ context.Context, relPath string, r io.Reader) (string, error) {
	if err := s.fs.MkdirAll(filepath.Dir(relPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}
	f, err := s.fs.Create(relPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", relPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", relPath, err)
	}
	return relPath, nil
}

// Open retrieves a previously saved file by its relative path.
func (s *AferoStore) Open(_ context.Context, relPath string) (io.ReadCloser, error) {
	f, err := s.fs.Open(relPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", relPath, err)
	}
	return f, nil
}

// Exists reports whether a file is present at the relative path.
func (s *AferoStore) Exists(_ context.Context, relPath string) bool {
	ok, err := afero.Exists(s.fs, relPath)
	return err == nil && ok
}
