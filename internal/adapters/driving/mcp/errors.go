// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Bookdex. It enables AI assistants like Claude to search the catalogs and
// resolve books through the same core services the CLI uses.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
