package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates every catalog source produced an empty record
	// for the requested identity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidIdentifier indicates a malformed or unconvertible
	// ISBN/control number. Terminal for the request that supplied it.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSources indicates no catalog connector is enabled.
	ErrNoSources = errors.New("no catalog sources enabled")

	// ErrUnsupportedProvenance indicates a record arrived tagged with an
	// unknown catalog origin.
	ErrUnsupportedProvenance = errors.New("unsupported provenance")

	// Discovery errors.

	// ErrInvalidAuthorKey indicates an author key that is neither an
	// Open Library author key nor a usable author name.
	ErrInvalidAuthorKey = errors.New("invalid author key")

	// ErrInvalidWorkKey indicates a malformed Open Library work key.
	ErrInvalidWorkKey = errors.New("invalid work key")

	// Connector errors.

	// ErrProviderDisabled indicates the catalog provider is switched off
	// in settings.
	ErrProviderDisabled = errors.New("provider disabled")

	// ErrRateLimited indicates the catalog API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotSupported indicates the connector does not implement the
	// requested operation. Callers should consult capabilities first.
	ErrNotSupported = errors.New("operation not supported")
)
