package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// CacheStore persists provider responses under an opaque key with a
// per-entry TTL. Connectors consult it before going to the network.
type CacheStore interface {
	// Get returns the cached payload for key. The boolean reports
	// whether a live (unexpired) entry existed.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload under key for the given lifetime,
	// replacing any previous entry.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Stats summarises entries and hit/miss counts.
	Stats(ctx context.Context) (domain.CacheStats, error)

	// Purge removes every entry, live or expired.
	Purge(ctx context.Context) error

	// Close releases resources.
	Close() error
}
