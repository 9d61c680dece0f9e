package driven

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// RunStore persists dredge runs so feed quality can be inspected
// after the fact.
type RunStore interface {
	// Record stores one completed run.
	Record(ctx context.Context, run domain.DredgeRun) error

	// Last returns the most recently recorded run.
	// Returns domain.ErrNotFound when no run has been recorded.
	Last(ctx context.Context) (domain.DredgeRun, error)

	// List returns up to limit runs, newest first.
	List(ctx context.Context, limit int) ([]domain.DredgeRun, error)

	// Close releases resources.
	Close() error
}
