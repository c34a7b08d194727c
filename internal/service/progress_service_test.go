package service

import (
	"context"
	"testing"

	"github.com/kemetlearn/kemet_service/internal/store"
)

func TestMarkDayCompleteIsIdempotent(t *testing.T) {
	s := NewProgressService(store.NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.MarkDayComplete(ctx, "a@b.com", 1); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if err := s.MarkDayComplete(ctx, "a@b.com", 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	days, err := s.Completed(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(days) != 2 || days[0] != 1 || days[1] != 3 {
		t.Errorf("unexpected completed days: %v", days)
	}
}

func TestProgressScopedPerIdentity(t *testing.T) {
	s := NewProgressService(store.NewMemoryStore())
	ctx := context.Background()

	if err := s.MarkDayComplete(ctx, "a@b.com", 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := s.MarkDayComplete(ctx, GuestIdentity, 2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	guestDays, err := s.Completed(ctx, GuestIdentity)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(guestDays) != 1 || guestDays[0] != 2 {
		t.Errorf("guest record leaked: %v", guestDays)
	}

	// Empty identity resolves to the guest record.
	anonDays, err := s.Completed(ctx, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(anonDays) != 1 || anonDays[0] != 2 {
		t.Errorf("empty identity should read the guest record: %v", anonDays)
	}
}

func TestUnmarkDay(t *testing.T) {
	s := NewProgressService(store.NewMemoryStore())
	ctx := context.Background()

	if err := s.MarkDayComplete(ctx, GuestIdentity, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := s.UnmarkDay(ctx, GuestIdentity, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Unmarking an absent day is a no-op.
	if err := s.UnmarkDay(ctx, GuestIdentity, 7); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	days, err := s.Completed(ctx, GuestIdentity)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected empty set, got %v", days)
	}
}

func TestMalformedRecordStartsFresh(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()
	if err := kv.Set(ctx, "completedDays:guest", "not json"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s := NewProgressService(kv)
	days, err := s.Completed(ctx, GuestIdentity)
	if err != nil {
		t.Fatalf("malformed record must not error: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected fresh record, got %v", days)
	}
}

func TestPercent(t *testing.T) {
	s := NewProgressService(store.NewMemoryStore())
	ctx := context.Background()

	if err := s.MarkDayComplete(ctx, GuestIdentity, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pct, err := s.Percent(ctx, GuestIdentity, 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pct != 25 {
		t.Errorf("expected 25%%, got %v", pct)
	}

	pct, err = s.Percent(ctx, GuestIdentity, 0)
	if err != nil || pct != 0 {
		t.Errorf("zero total days must yield 0, got %v, %v", pct, err)
	}
}
