package driving

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// LookupService resolves a single identifier to one canonical record.
type LookupService interface {
	// Lookup validates the raw identifier, fetches every enabled
	// catalog's record for it, and merges them with secondary
	// enrichment (work details, author biographies, archival merge).
	// Fails with domain.ErrInvalidIdentifier for malformed input and
	// domain.ErrNotFound when no catalog has the book.
	Lookup(ctx context.Context, rawIdentifier string) (*domain.Book, error)
}
