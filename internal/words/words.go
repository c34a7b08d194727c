// Package words holds the compiled-in daily vocabulary corpus.
package words

import "github.com/kemetlearn/kemet_service/internal/errors"

// Word is a single vocabulary entry. Identity within a day is the Word
// string itself.
type Word struct {
	Word        string   `json:"word"`
	Translation string   `json:"translation"`
	Examples    []string `json:"examples"`
	AudioURL    string   `json:"audio_url,omitempty"`
}

// DailySet groups the words for one study day. Day is a display label
// ordered by position in the corpus.
type DailySet struct {
	Day   int    `json:"day"`
	Words []Word `json:"words"`
}

// Store provides read access to the vocabulary corpus. The data is
// compiled in and never mutated.
type Store struct {
	sets []DailySet
}

// NewStore creates a store over the built-in corpus.
func NewStore() *Store {
	return &Store{sets: dailySets}
}

// NewStoreWithSets creates a store over a custom corpus (tests).
func NewStoreWithSets(sets []DailySet) *Store {
	return &Store{sets: sets}
}

// All returns every daily set in order.
func (s *Store) All() []DailySet {
	return s.sets
}

// Day returns the set for the given day number.
func (s *Store) Day(day int) (*DailySet, error) {
	for i := range s.sets {
		if s.sets[i].Day == day {
			return &s.sets[i], nil
		}
	}
	return nil, errors.NotFound("daily word set")
}

// TotalDays returns the number of study days in the corpus.
func (s *Store) TotalDays() int {
	return len(s.sets)
}
