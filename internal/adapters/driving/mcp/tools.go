package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_books tool.
type SearchInput struct {
	Query   string `json:"query" jsonschema:"the free-text query to search the catalogs for"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	Subject string `json:"subject,omitempty" jsonschema:"restrict results to one subject heading"`
}

// SearchOutput is the output schema for the search_books tool.
type SearchOutput struct {
	Results      []BookOutput   `json:"results"`
	Count        int            `json:"count"`
	SourceCounts map[string]int `json:"source_counts,omitempty"`
}

// LookupInput is the input schema for the lookup_book tool.
type LookupInput struct {
	Identifier string `json:"identifier" jsonschema:"ISBN-10, ISBN-13, or control number"`
}

// LookupOutput is the output schema for the lookup_book tool.
type LookupOutput struct {
	Book BookOutput `json:"book"`
}

// ReleasesInput is the input schema for the new_releases tool.
type ReleasesInput struct {
	Limit   int    `json:"limit,omitempty" jsonschema:"number of valid releases wanted (default 20)"`
	Subject string `json:"subject,omitempty" jsonschema:"restrict the feed to one subject heading"`
}

// ReleasesOutput is the output schema for the new_releases tool.
type ReleasesOutput struct {
	Releases []BookOutput `json:"releases"`
	Count    int          `json:"count"`
	Scanned  int          `json:"scanned"`
	Depth    int          `json:"depth"`
}

// AuthorInput is the input schema for the author_profile tool.
type AuthorInput struct {
	ID string `json:"id" jsonschema:"Open Library author key (OL...A) or an author name"`
}

// AuthorOutput is the output schema for the author_profile tool.
type AuthorOutput struct {
	Name      string       `json:"name"`
	Bio       string       `json:"bio,omitempty"`
	BirthDate string       `json:"birth_date,omitempty"`
	DeathDate string       `json:"death_date,omitempty"`
	PhotoURL  string       `json:"photo_url,omitempty"`
	Books     []BookOutput `json:"books"`
	Source    string       `json:"source"`
}

// BookOutput is the canonical record shape returned by every tool.
type BookOutput struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	ISBN13        string   `json:"isbn13,omitempty"`
	ISBN10        string   `json:"isbn10,omitempty"`
	Description   string   `json:"description,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Format        string   `json:"format"`
	Rating        float64  `json:"rating,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
	Subjects      []string `json:"subjects,omitempty"`
	Series        string   `json:"series,omitempty"`
	SeriesOrder   *int     `json:"series_order,omitempty"`
	ContentFlag   string   `json:"content_flag,omitempty"`
	PrimarySource bool     `json:"primary_source,omitempty"`
	DataSources   []string `json:"data_sources"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_books",
		Description: "Search the book catalogs and return merged canonical records",
	}, s.handleSearchBooks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_book",
		Description: "Look up one book by ISBN or control number",
	}, s.handleLookupBook)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "new_releases",
		Description: "List validated new releases from the open catalog",
	}, s.handleNewReleases)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "author_profile",
		Description: "Build an author profile with bibliography",
	}, s.handleAuthorProfile)
}

// handleSearchBooks handles the search_books tool invocation.
func (s *Server) handleSearchBooks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	opts := domain.SearchOptions{Limit: limit, Subject: input.Subject}
	resp, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]BookOutput, len(resp.Results)),
		Count:   resp.NumFound,
	}
	if len(resp.SourceCounts) > 0 {
		output.SourceCounts = make(map[string]int, len(resp.SourceCounts))
		for p, n := range resp.SourceCounts {
			output.SourceCounts[p.String()] = n
		}
	}
	for i := range resp.Results {
		output.Results[i] = toBookOutput(&resp.Results[i])
	}

	return nil, output, nil
}

// handleLookupBook handles the lookup_book tool invocation.
func (s *Server) handleLookupBook(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	book, err := s.ports.Lookup.Lookup(ctx, input.Identifier)
	if err != nil {
		return nil, LookupOutput{}, err
	}

	return nil, LookupOutput{Book: toBookOutput(book)}, nil
}

// handleNewReleases handles the new_releases tool invocation.
func (s *Server) handleNewReleases(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReleasesInput,
) (*mcp.CallToolResult, ReleasesOutput, error) {
	if s.ports.Releases == nil {
		return nil, ReleasesOutput{}, errors.New("release service is not available")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	opts := domain.ReleaseOptions{Limit: limit, Subject: input.Subject}
	feed, err := s.ports.Releases.NewReleases(ctx, opts)
	if err != nil {
		return nil, ReleasesOutput{}, err
	}

	output := ReleasesOutput{
		Releases: make([]BookOutput, len(feed.Results)),
		Count:    feed.NumFound,
		Scanned:  feed.Run.Scanned,
		Depth:    feed.Run.Depth,
	}
	for i := range feed.Results {
		output.Releases[i] = toBookOutput(&feed.Results[i])
	}

	return nil, output, nil
}

// handleAuthorProfile handles the author_profile tool invocation.
func (s *Server) handleAuthorProfile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AuthorInput,
) (*mcp.CallToolResult, AuthorOutput, error) {
	if s.ports.Discovery == nil {
		return nil, AuthorOutput{}, errors.New("discovery service is not available")
	}

	profile, err := s.ports.Discovery.AuthorProfile(ctx, input.ID)
	if err != nil {
		return nil, AuthorOutput{}, err
	}

	output := AuthorOutput{
		Name:      profile.Name,
		Bio:       profile.Bio,
		BirthDate: profile.BirthDate,
		DeathDate: profile.DeathDate,
		PhotoURL:  profile.PhotoURL,
		Books:     make([]BookOutput, len(profile.Books)),
		Source:    profile.Source.String(),
	}
	for i := range profile.Books {
		output.Books[i] = toBookOutput(&profile.Books[i])
	}

	return nil, output, nil
}

// toBookOutput converts a canonical record to the wire shape.
func toBookOutput(book *domain.Book) BookOutput {
	out := BookOutput{
		Title:         book.Title,
		Subtitle:      book.Subtitle,
		ISBN13:        book.ISBN13,
		ISBN10:        book.ISBN10,
		Description:   book.Description,
		Publisher:     book.Publisher,
		PublishedDate: book.PublishedDate,
		PageCount:     book.PageCount,
		Format:        book.Format.String(),
		Rating:        book.Rating,
		CoverURL:      book.CoverURL,
		Subjects:      book.Subjects,
		ContentFlag:   book.ContentFlag.String(),
		PrimarySource: book.PrimarySource,
		DataSources:   make([]string, len(book.DataSources)),
	}
	for _, a := range book.Authors {
		out.Authors = append(out.Authors, a.Name)
	}
	for i, p := range book.DataSources {
		out.DataSources[i] = p.String()
	}
	if book.Series != nil {
		out.Series = book.Series.Name
		out.SeriesOrder = book.Series.Order
	}
	return out
}
