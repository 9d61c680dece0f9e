package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Bookdex resources.
	uriScheme = "bookdex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resources for the two genre trees.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "genres/fiction",
		Name:        "fiction-genres",
		Description: "The fiction genre tree with tropes and character tags",
		MIMEType:    "application/json",
	}, s.handleFictionGenresResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "genres/non-fiction",
		Name:        "non-fiction-genres",
		Description: "The non-fiction genre tree with domain and focus tags",
		MIMEType:    "application/json",
	}, s.handleNonFictionGenresResource)

	// Template for canonical book records.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "books/{isbn}",
		Name:        "book-record",
		Description: "Canonical record for one book, merged across catalogs",
		MIMEType:    "application/json",
	}, s.handleBookResource)
}

// handleFictionGenresResource returns the fiction genre tree.
func (s *Server) handleFictionGenresResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Genres == nil {
		return emptyListResult(req.Params.URI), nil
	}
	return genreTreeResult(req.Params.URI, s.ports.Genres.Fiction())
}

// handleNonFictionGenresResource returns the non-fiction genre tree.
func (s *Server) handleNonFictionGenresResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Genres == nil {
		return emptyListResult(req.Params.URI), nil
	}
	return genreTreeResult(req.Params.URI, s.ports.Genres.NonFiction())
}

// handleBookResource returns the canonical record for one ISBN.
func (s *Server) handleBookResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the identifier from URI: bookdex://books/{isbn}
	isbn := extractISBN(req.Params.URI)
	if isbn == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	book, err := s.ports.Lookup.Lookup(ctx, isbn)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidIdentifier) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("looking up book: %w", err)
	}

	data, err := json.MarshalIndent(toBookOutput(book), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling book: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// genreTreeResult marshals one genre tree into a resource result.
func genreTreeResult(uri string, genres []domain.Genre) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(genres, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling genres: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// emptyListResult is returned when the genre catalog is not wired.
func emptyListResult(uri string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}
}

// extractISBN extracts the identifier from a URI like bookdex://books/{isbn}.
func extractISBN(uri string) string {
	const prefix = uriScheme + "books/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
