// Package enrichers provides post-merge book classification implementations.
package enrichers

import (
	"fmt"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Pipeline chains multiple Enrichers and runs them in order.
// It implements the EnricherPipeline interface.
type Pipeline struct {
	enrichers []driven.Enricher
}

// NewPipeline creates a new enrichment pipeline with the given enrichers.
// Enrichers are executed in the order provided.
func NewPipeline(enrichers ...driven.Enricher) *Pipeline {
	return &Pipeline{
		enrichers: enrichers,
	}
}

// Enrich runs the book through all enrichers in order.
// Later enrichers see the fields written by earlier ones, so ordering
// matters: subject cleanup must run before anything that reads subjects.
func (p *Pipeline) Enrich(book *domain.Book) error {
	if book == nil {
		return fmt.Errorf("book is nil")
	}

	for _, enricher := range p.enrichers {
		if err := enricher.Enrich(book); err != nil {
			return fmt.Errorf("enricher %s: %w", enricher.Name(), err)
		}
	}

	return nil
}

// Add appends an enricher to the pipeline.
func (p *Pipeline) Add(enricher driven.Enricher) {
	p.enrichers = append(p.enrichers, enricher)
}

// Len returns the number of enrichers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.enrichers)
}
