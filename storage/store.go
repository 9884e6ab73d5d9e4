// Package storage persists the task document. Every backend reads and
// writes the whole document at once.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/megha-ranjith/To-Do/domain/task"
)

// DocumentStore loads and saves the complete task document.
//
// Load returns task.NewDocument() when nothing has been stored yet.
// Failures wrap task.ErrStorage. Stores do no locking of their own.
type DocumentStore interface {
	Load(ctx context.Context) (*task.Document, error)
	Save(ctx context.Context, doc *task.Document) error
}

// decodeDocument parses a stored document. Empty input is treated as absent.
func decodeDocument(data []byte) (*task.Document, error) {
	if len(data) == 0 {
		return task.NewDocument(), nil
	}

	doc := task.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %v", task.ErrStorage, err)
	}
	doc.Normalize()
	return doc, nil
}

func encodeDocument(doc *task.Document) ([]byte, error) {
	out := doc.Clone()
	out.Normalize()

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encode document: %v", task.ErrStorage, err)
	}
	return data, nil
}
