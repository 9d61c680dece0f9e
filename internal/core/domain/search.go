package domain

// SearchOptions configures a federated catalog search.
type SearchOptions struct {
	// Limit is the maximum number of results.
	Limit int

	// Offset is the number of results to skip.
	Offset int

	// Subject restricts the search to one subject heading.
	Subject string
}

// SearchResponse is the ranked outcome of a federated search.
type SearchResponse struct {
	// Query is the free-text query as given.
	Query string

	// NumFound is the number of canonical records returned.
	NumFound int

	// SourceCounts reports how many raw records each enabled catalog
	// contributed before resolution.
	SourceCounts map[Provenance]int

	// Results is the merged, ranked record list, best first.
	Results []Book
}
