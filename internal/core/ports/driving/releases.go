package driving

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// ReleaseService produces the gated new-releases feed.
type ReleaseService interface {
	// NewReleases dredges the open catalog's recency feed until enough
	// valid releases are accumulated or the depth bound is hit.
	NewReleases(ctx context.Context, opts domain.ReleaseOptions) (*domain.ReleaseFeed, error)

	// LastRun returns the most recent recorded dredge run.
	LastRun(ctx context.Context) (domain.DredgeRun, error)
}
