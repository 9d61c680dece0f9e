package mcp

import (
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides federated catalog search.
	Search driving.SearchService

	// Lookup resolves single identifiers.
	Lookup driving.LookupService

	// Releases produces the gated new-releases feed.
	Releases driving.ReleaseService

	// Discovery serves author profiles and work editions.
	Discovery driving.DiscoveryService

	// Genres serves the static genre taxonomy.
	Genres driving.GenreCatalog
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	// Releases, Discovery, and Genres are optional; their tools and
	// resources report unavailability at call time.
	return nil
}
