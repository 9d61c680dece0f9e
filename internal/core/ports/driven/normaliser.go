package driven

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// Normaliser parses one catalog's raw payloads into SourceRecords.
// Each provider has exactly one normaliser; shape variance (strings vs
// objects for categories, lists vs scalars for contributors) is
// resolved here, once, so the core never inspects raw JSON.
type Normaliser interface {
	// Provenance returns the catalog origin this normaliser handles.
	Provenance() domain.Provenance

	// Normalise parses a raw payload into a SourceRecord. Absent
	// fields default to their zero values rather than erroring; only
	// an unparseable payload fails.
	Normalise(ctx context.Context, raw domain.RawRecord) (domain.SourceRecord, error)
}

// DiscoveryNormaliser parses author and work-level payloads for
// catalogs that expose them.
type DiscoveryNormaliser interface {
	// NormaliseAuthor parses an author entity payload. The profile's
	// bibliography is left empty; the discovery service fills it.
	NormaliseAuthor(raw domain.RawRecord) (domain.AuthorProfile, error)

	// NormaliseWorkDetails parses a work-level payload into the fields
	// used for lookup enrichment.
	NormaliseWorkDetails(raw domain.RawRecord) (domain.WorkDetails, error)

	// NormaliseWorkEditions parses an editions listing payload.
	NormaliseWorkEditions(raw domain.RawRecord) (domain.WorkEditions, error)
}
