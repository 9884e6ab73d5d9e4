package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/megha-ranjith/To-Do/domain/task"
)

// FileStore keeps the document in a single JSON file.
type FileStore struct {
	path string
}

var _ DocumentStore = (*FileStore)(nil)

// NewFileStore creates a store backed by the file at path. The file does not
// need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the file, returning the default document if it is missing.
func (s *FileStore) Load(_ context.Context) (*task.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return task.NewDocument(), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", task.ErrStorage, s.path, err)
	}
	return decodeDocument(data)
}

// Save writes the document to a temp file next to the target and renames it
// into place.
func (s *FileStore) Save(_ context.Context, doc *task.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", task.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", task.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", task.ErrStorage, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", task.ErrStorage, s.path, err)
	}
	return nil
}
