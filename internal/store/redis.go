package store

import (
	"context"
	"fmt"

	"github.com/kemetlearn/kemet_service/internal/client"
)

// RedisStore is a KV implementation backed by Redis.
type RedisStore struct {
	client *client.RedisClient
	prefix string
}

// NewRedisStore creates a Redis-backed store. All keys are namespaced
// under the given prefix.
func NewRedisStore(c *client.RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: c, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

// Get returns the value stored at key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(key))
	if err != nil {
		if client.IsNil(err) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

// Set stores value at key.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Delete(ctx, s.key(key)); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}
