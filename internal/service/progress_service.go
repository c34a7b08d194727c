package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/store"
)

// GuestIdentity is the sentinel for users who have not logged in.
const GuestIdentity = "guest"

// ProgressService tracks which vocabulary days each identity has marked
// complete. Records are scoped per identity (email or guest) and persisted
// as serialized JSON arrays; switching identity switches the record
// wholesale, with no merging.
type ProgressService struct {
	kv store.KV
}

// NewProgressService creates a new progress tracker over kv.
func NewProgressService(kv store.KV) *ProgressService {
	return &ProgressService{kv: kv}
}

func progressKey(identity string) string {
	if identity == "" {
		identity = GuestIdentity
	}
	return fmt.Sprintf("completedDays:%s", identity)
}

func (s *ProgressService) load(ctx context.Context, identity string) (map[int]bool, error) {
	raw, err := s.kv.Get(ctx, progressKey(identity))
	if err != nil {
		if err == store.ErrKeyNotFound {
			return map[int]bool{}, nil
		}
		return nil, errors.Wrap(errors.ErrStorageService, "failed to load progress", err)
	}

	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		// A malformed record is unrecoverable; start fresh.
		return map[int]bool{}, nil
	}

	set := make(map[int]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set, nil
}

func (s *ProgressService) save(ctx context.Context, identity string, set map[int]bool) error {
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)

	data, err := json.Marshal(days)
	if err != nil {
		return errors.InternalWrap("failed to encode progress", err)
	}
	if err := s.kv.Set(ctx, progressKey(identity), string(data)); err != nil {
		return errors.Wrap(errors.ErrStorageService, "failed to save progress", err)
	}
	return nil
}

// MarkDayComplete records day as finished for identity. Idempotent: an
// already-completed day is a no-op.
func (s *ProgressService) MarkDayComplete(ctx context.Context, identity string, day int) error {
	set, err := s.load(ctx, identity)
	if err != nil {
		return err
	}
	if set[day] {
		return nil
	}
	set[day] = true
	return s.save(ctx, identity, set)
}

// UnmarkDay removes day from identity's completion set.
func (s *ProgressService) UnmarkDay(ctx context.Context, identity string, day int) error {
	set, err := s.load(ctx, identity)
	if err != nil {
		return err
	}
	if !set[day] {
		return nil
	}
	delete(set, day)
	return s.save(ctx, identity, set)
}

// Completed returns identity's completed days in ascending order.
func (s *ProgressService) Completed(ctx context.Context, identity string) ([]int, error) {
	set, err := s.load(ctx, identity)
	if err != nil {
		return nil, err
	}

	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days, nil
}

// Percent returns identity's completion percentage over totalDays.
func (s *ProgressService) Percent(ctx context.Context, identity string, totalDays int) (float64, error) {
	if totalDays <= 0 {
		return 0, nil
	}
	days, err := s.Completed(ctx, identity)
	if err != nil {
		return 0, err
	}
	return float64(len(days)) / float64(totalDays) * 100, nil
}
