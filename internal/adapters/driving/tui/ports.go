// Package tui provides an interactive terminal user interface for bookdex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides federated catalog search.
	Search driving.SearchService

	// Lookup resolves a single identifier to a canonical record.
	Lookup driving.LookupService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, lookup driving.LookupService) *Ports {
	return &Ports{
		Search: search,
		Lookup: lookup,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
