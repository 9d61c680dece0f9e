package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore for testing.
type RunStore struct {
	mu   sync.Mutex
	runs []domain.DredgeRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Record appends a dredge run to the log.
func (s *RunStore) Record(_ context.Context, run domain.DredgeRun) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// Last returns the most recent run. Ties on the start time are broken by
// insertion order, matching the sqlite store.
func (s *RunStore) Last(_ context.Context) (domain.DredgeRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.runs) == 0 {
		return domain.DredgeRun{}, domain.ErrNotFound
	}
	last := s.runs[0]
	for _, run := range s.runs[1:] {
		if !run.StartedAt.Before(last.StartedAt) {
			last = run
		}
	}
	return last, nil
}

// List returns up to limit runs, newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.DredgeRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		return nil, nil
	}
	// Reverse insertion order first so the stable sort keeps
	// later-inserted runs ahead of earlier ones on equal start times.
	ordered := make([]domain.DredgeRun, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		ordered = append(ordered, s.runs[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartedAt.After(ordered[j].StartedAt)
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered, nil
}

// Close releases resources (no-op for memory store).
func (s *RunStore) Close() error {
	return nil
}
