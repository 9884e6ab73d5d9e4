package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/megha-ranjith/To-Do/domain/task"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the document as a single Redis string value.
type RedisStore struct {
	client *redis.Client
	key    string
}

var _ DocumentStore = (*RedisStore)(nil)

// NewRedisStore creates a store that reads and writes key on client.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Load reads the document; redis.Nil yields the default document.
func (s *RedisStore) Load(ctx context.Context) (*task.Document, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return task.NewDocument(), nil
		}
		return nil, fmt.Errorf("%w: redis get %s: %v", task.ErrStorage, s.key, err)
	}
	return decodeDocument(data)
}

// Save overwrites the document with no expiry.
func (s *RedisStore) Save(ctx context.Context, doc *task.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", task.ErrStorage, s.key, err)
	}
	return nil
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
