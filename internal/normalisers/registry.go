package normalisers

import (
	"context"
	"fmt"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry maps catalog provenances to their normalisers.
// Registration happens once at startup; the registry is read-only
// afterwards.
type Registry struct {
	normalisers map[domain.Provenance]driven.Normaliser
	order       []domain.Provenance
}

// NewRegistry creates an empty normaliser registry.
func NewRegistry() *Registry {
	return &Registry{
		normalisers: make(map[domain.Provenance]driven.Normaliser),
	}
}

// Register adds a normaliser, replacing any earlier one for the same
// catalog.
func (r *Registry) Register(normaliser driven.Normaliser) {
	provenance := normaliser.Provenance()
	if _, exists := r.normalisers[provenance]; !exists {
		r.order = append(r.order, provenance)
	}
	r.normalisers[provenance] = normaliser
}

// Normalise parses the record with its catalog's normaliser.
// Returns domain.ErrUnsupportedProvenance if no normaliser is
// registered for the record's origin.
func (r *Registry) Normalise(ctx context.Context, raw domain.RawRecord) (domain.SourceRecord, error) {
	normaliser, ok := r.normalisers[raw.Provenance]
	if !ok {
		return domain.SourceRecord{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvenance, raw.Provenance)
	}
	return normaliser.Normalise(ctx, raw)
}

// SupportedProvenances returns the registered catalogs in registration
// order.
func (r *Registry) SupportedProvenances() []domain.Provenance {
	return append([]domain.Provenance(nil), r.order...)
}
