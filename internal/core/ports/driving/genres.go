package driving

import "github.com/custodia-labs/bookdex-cli/internal/core/domain"

// GenreCatalog serves the static genre taxonomy.
type GenreCatalog interface {
	// Fiction returns the fiction genre tree.
	Fiction() []domain.Genre

	// NonFiction returns the non-fiction genre tree.
	NonFiction() []domain.Genre
}
