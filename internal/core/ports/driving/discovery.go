package driving

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// DiscoveryService serves author and work-level pages.
type DiscoveryService interface {
	// AuthorProfile builds an author page. An Open Library author key
	// yields the catalogued profile plus bibliography; any other id is
	// treated as a name and resolved through the commercial catalog
	// into a generated profile.
	AuthorProfile(ctx context.Context, id string) (*domain.AuthorProfile, error)

	// WorkEditions lists the catalogued editions for a work key.
	// Fails with domain.ErrInvalidWorkKey for malformed keys.
	WorkEditions(ctx context.Context, workKey string) (*domain.WorkEditions, error)
}
