package store

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "voiceRate", "0.9"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := s.Get(ctx, "voiceRate")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "0.9" {
		t.Errorf("expected 0.9, got %q", got)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "missing"); err != ErrKeyNotFound {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Set(ctx, "k", "first")
	_ = s.Set(ctx, "k", "second")

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "second" {
		t.Errorf("expected second, got %q", got)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Set(ctx, "k", "v")
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.Get(ctx, "k"); err != ErrKeyNotFound {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// Deleting an absent key is fine.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("unexpected err deleting absent key: %v", err)
	}
}
