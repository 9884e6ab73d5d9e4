package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	kvjetstream "github.com/go-monolith/mono/plugin/kv-jetstream"
	"github.com/megha-ranjith/To-Do/domain/task"
)

const (
	// KVBucketName is the JetStream KV bucket holding the document.
	KVBucketName = "tasks"
	// KVDocumentKey is the key of the document inside the bucket.
	KVDocumentKey = "document"
)

// KVBucket is the part of kvjetstream.KVStoragePort used by KVStore.
type KVBucket interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
}

// KVStore keeps the document as a single value in a JetStream KV bucket.
type KVStore struct {
	bucket KVBucket
	key    string
}

var _ DocumentStore = (*KVStore)(nil)

// NewKVStore creates a store over bucket.
func NewKVStore(bucket KVBucket) *KVStore {
	return &KVStore{bucket: bucket, key: KVDocumentKey}
}

// Load reads the document value; a missing key yields the default document.
func (s *KVStore) Load(_ context.Context) (*task.Document, error) {
	data, err := s.bucket.Get(s.key)
	if err != nil {
		if errors.Is(err, kvjetstream.ErrKeyNotFound) {
			return task.NewDocument(), nil
		}
		return nil, fmt.Errorf("%w: kv get %s: %v", task.ErrStorage, s.key, err)
	}
	return decodeDocument(data)
}

// Save overwrites the document value. Values never expire.
func (s *KVStore) Save(_ context.Context, doc *task.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := s.bucket.Set(s.key, data, 0); err != nil {
		return fmt.Errorf("%w: kv set %s: %v", task.ErrStorage, s.key, err)
	}
	return nil
}

// KVBucketConfig is the bucket definition the kv-jetstream plugin must be
// configured with for KVStore.
func KVBucketConfig() kvjetstream.BucketConfig {
	return kvjetstream.BucketConfig{
		Name:        KVBucketName,
		Description: "Task document",
		Storage:     kvjetstream.FileStorage,
	}
}
