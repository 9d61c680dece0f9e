package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// fakeNormaliser returns a fixed title for its provenance.
type fakeNormaliser struct {
	provenance domain.Provenance
	title      string
}

func (f *fakeNormaliser) Provenance() domain.Provenance { return f.provenance }

func (f *fakeNormaliser) Normalise(_ context.Context, _ domain.RawRecord) (domain.SourceRecord, error) {
	return domain.SourceRecord{Provenance: f.provenance, Title: f.title}, nil
}

func TestRegistry_Dispatch(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeNormaliser{provenance: domain.ProvenanceGoogle, title: "from google"})
	registry.Register(&fakeNormaliser{provenance: domain.ProvenanceOpenLibrary, title: "from open library"})

	record, err := registry.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceOpenLibrary,
	})
	require.NoError(t, err)
	assert.Equal(t, "from open library", record.Title)

	record, err = registry.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceGoogle,
	})
	require.NoError(t, err)
	assert.Equal(t, "from google", record.Title)
}

func TestRegistry_UnsupportedProvenance(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceLOC,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvenance)
}

func TestRegistry_ReplaceKeepsOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeNormaliser{provenance: domain.ProvenanceGoogle, title: "first"})
	registry.Register(&fakeNormaliser{provenance: domain.ProvenanceLOC, title: "loc"})
	registry.Register(&fakeNormaliser{provenance: domain.ProvenanceGoogle, title: "second"})

	assert.Equal(t,
		[]domain.Provenance{domain.ProvenanceGoogle, domain.ProvenanceLOC},
		registry.SupportedProvenances())

	record, err := registry.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceGoogle,
	})
	require.NoError(t, err)
	assert.Equal(t, "second", record.Title)
}
