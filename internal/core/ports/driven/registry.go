package driven

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// NormaliserRegistry dispatches raw records to the normaliser for
// their provenance.
type NormaliserRegistry interface {
	// Normalise parses a raw record using the provenance-matched
	// normaliser. Fails with domain.ErrUnsupportedProvenance when no
	// normaliser is registered for the record's origin.
	Normalise(ctx context.Context, raw domain.RawRecord) (domain.SourceRecord, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedProvenances returns the catalog origins that can be
	// normalised.
	SupportedProvenances() []domain.Provenance
}
