package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kemetlearn/kemet_service/internal/client"
)

// PostgresStore is a KV implementation backed by a single app_kv table.
// The schema is created by cmd/migrate.
type PostgresStore struct {
	db *client.PostgresClient
}

// NewPostgresStore creates a Postgres-backed store.
func NewPostgresStore(db *client.PostgresClient) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get returns the value stored at key.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	if s.db == nil || s.db.Pool == nil {
		return "", fmt.Errorf("database not configured")
	}

	query := `SELECT value FROM app_kv WHERE key = $1`

	var value string
	err := s.db.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}

	return value, nil
}

// Set stores value at key with last-writer-wins semantics.
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	if s.db == nil || s.db.Pool == nil {
		return fmt.Errorf("database not configured")
	}

	query := `
		INSERT INTO app_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	if _, err := s.db.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

// Delete removes key.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if s.db == nil || s.db.Pool == nil {
		return fmt.Errorf("database not configured")
	}

	query := `DELETE FROM app_kv WHERE key = $1`

	if _, err := s.db.Pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	return nil
}
