package services

import (
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
)

// Ensure GenreService implements the interface.
var _ driving.GenreCatalog = (*GenreService)(nil)

// GenreService serves the genre taxonomy. The trees are parsed once at
// startup and injected here, keeping embedded assets out of the core.
type GenreService struct {
	fiction    []domain.Genre
	nonFiction []domain.Genre
}

// NewGenreService creates a genre service over the given trees.
func NewGenreService(fiction, nonFiction []domain.Genre) *GenreService {
	return &GenreService{
		fiction:    fiction,
		nonFiction: nonFiction,
	}
}

// Fiction returns the fiction genre tree.
func (s *GenreService) Fiction() []domain.Genre {
	return s.fiction
}

// NonFiction returns the non-fiction genre tree.
func (s *GenreService) NonFiction() []domain.Genre {
	return s.nonFiction
}
