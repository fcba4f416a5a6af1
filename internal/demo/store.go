package demo

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Submission is a saved form entry.
type Submission struct {
	ID        string
	Values    map[string]string
	CreatedAt time.Time
}

// Store keeps submissions in memory, newest first.
type Store struct {
	mu          sync.RWMutex
	submissions []Submission
}

func NewStore() *Store {
	return &Store{}
}

// Save records values. It matches form.SaveFunc.
func (s *Store) Save(ctx context.Context, values map[string]string) {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}

	sub := Submission{
		ID:        xid.New().String(),
		Values:    copied,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.submissions = append([]Submission{sub}, s.submissions...)
	s.mu.Unlock()

	slog.InfoContext(ctx, "submission saved", slog.String("submissionID", sub.ID))
}

func (s *Store) List() []Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Submission(nil), s.submissions...)
}

// Keys returns the sorted value names of sub.
func (sub Submission) Keys() []string {
	keys := make([]string, 0, len(sub.Values))
	for k := range sub.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
