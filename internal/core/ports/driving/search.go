package driving

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// SearchService provides hybrid catalog search to external actors.
type SearchService interface {
	// Search fans out to every enabled catalog, resolves identities,
	// merges groups, and returns the ranked canonical records.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}
