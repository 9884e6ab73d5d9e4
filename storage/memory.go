package storage

import (
	"context"
	"sync"

	"github.com/megha-ranjith/To-Do/domain/task"
)

// MemoryStore keeps the document in process memory. Used for tests and the
// "memory" storage driver.
type MemoryStore struct {
	mu  sync.RWMutex
	doc *task.Document

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

var _ DocumentStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{doc: task.NewDocument()}
}

// Load returns a copy of the stored document.
func (s *MemoryStore) Load(_ context.Context) (*task.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone(), nil
}

// Save replaces the stored document with a copy of doc.
func (s *MemoryStore) Save(_ context.Context, doc *task.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.doc = doc.Clone()
	s.doc.Normalize()
	return nil
}
