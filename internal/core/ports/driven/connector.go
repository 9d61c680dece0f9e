package driven

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// Connector fetches raw records from one catalog provider.
// Each provider (googlebooks, openlibrary, loc) implements this
// interface. Connectors absorb provider quirks: pagination parameter
// mapping, rate limiting, and transient retries all happen behind it.
type Connector interface {
	// Provenance returns the catalog origin tag this connector emits.
	Provenance() domain.Provenance

	// Capabilities returns what this connector supports.
	Capabilities() ConnectorCapabilities

	// Search queries the catalog with free text and returns one raw
	// record per catalog item. An empty slice means no matches; a
	// failed upstream call surfaces as an error and is absorbed into
	// an empty contribution by the calling service.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RawRecord, error)

	// FetchByISBN retrieves the single record for a canonical ISBN-13.
	// Returns domain.ErrNotFound when the catalog has no entry.
	FetchByISBN(ctx context.Context, isbn string) (domain.RawRecord, error)

	// NewReleases fetches one page of the catalog's recency-sorted
	// feed. Only meaningful when SupportsNewReleases is true.
	NewReleases(ctx context.Context, opts domain.ReleaseOptions) ([]domain.RawRecord, error)

	// Close releases resources.
	Close() error
}

// ConnectorCapabilities describes what a connector supports.
type ConnectorCapabilities struct {
	// SupportsISBNLookup indicates FetchByISBN performs a real lookup.
	SupportsISBNLookup bool

	// SupportsNewReleases indicates the catalog exposes a
	// recency-sorted feed.
	SupportsNewReleases bool

	// SupportsSubjectFilter indicates search and releases accept a
	// subject restriction.
	SupportsSubjectFilter bool

	// RequiresAPIKey indicates the connector needs a configured key.
	RequiresAPIKey bool

	// SupportsRateLimiting indicates the connector throttles itself.
	SupportsRateLimiting bool

	// SupportsPagination indicates the connector maps offset/limit to
	// provider paging parameters internally.
	SupportsPagination bool
}

// ControlNumberLookup is implemented by connectors that can resolve
// alternate control numbers (LCCNs) in addition to ISBNs.
type ControlNumberLookup interface {
	// FetchByControlNumber retrieves the record for a control number.
	// Returns domain.ErrNotFound when the catalog has no entry.
	FetchByControlNumber(ctx context.Context, number string) (domain.RawRecord, error)
}

// DiscoveryConnector is implemented by catalogs exposing author and
// work-level endpoints beyond plain record search.
type DiscoveryConnector interface {
	// FetchAuthor retrieves an author entity by catalog key.
	FetchAuthor(ctx context.Context, key string) (domain.RawRecord, error)

	// FetchWorkDetails retrieves the work-level record for a work key.
	FetchWorkDetails(ctx context.Context, workKey string) (domain.RawRecord, error)

	// FetchWorkEditions retrieves the editions list for a work key.
	FetchWorkEditions(ctx context.Context, workKey string) (domain.RawRecord, error)

	// SearchByAuthorKey returns the catalog records attributed to the
	// author key, most relevant first.
	SearchByAuthorKey(ctx context.Context, key string, limit int) ([]domain.RawRecord, error)
}
