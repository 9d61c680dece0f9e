package driven

import "github.com/custodia-labs/bookdex-cli/internal/core/domain"

// Enricher derives one classification on a merged book in place.
// Enrichers are pure and synchronous: they read the book's merged
// fields and the vocabulary they were built with, nothing else.
type Enricher interface {
	// Name returns the enricher name for logging and configuration.
	Name() string

	// Enrich classifies the book, writing derived fields only.
	Enrich(book *domain.Book) error
}

// EnricherPipeline applies enrichers in a fixed order.
// The merger runs it once per canonical record, after field merge.
type EnricherPipeline interface {
	// Enrich runs the book through all enrichers in order.
	Enrich(book *domain.Book) error
}
