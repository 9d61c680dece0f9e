package driving

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// CacheAdmin exposes response cache administration.
type CacheAdmin interface {
	// Stats summarises the cache state.
	Stats(ctx context.Context) (domain.CacheStats, error)

	// Purge removes every cached response.
	Purge(ctx context.Context) error
}
