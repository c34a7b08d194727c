// Package store provides the key-value persistence capability used for
// user preferences, completion records and sessions. Values are
// string-serialized JSON owned by the caller; last writer wins.
package store

import (
	"context"
	"sync"

	"github.com/kemetlearn/kemet_service/internal/errors"
)

// ErrKeyNotFound is returned by Get when the key is absent.
var ErrKeyNotFound = errors.NotFound("key")

// KV is the minimal persistence contract: get/set/delete a string by key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-process KV implementation, the default when no
// persistence backend is configured, and the one tests use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get returns the value stored at key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value at key, overwriting any previous value.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
