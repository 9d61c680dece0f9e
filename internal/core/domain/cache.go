package domain

// CacheStats summarises the response cache state.
type CacheStats struct {
	// Entries is the number of live cached responses.
	Entries int

	// Expired is the number of entries past their TTL and awaiting
	// cleanup.
	Expired int

	// Hits and Misses count lookups since the store was opened.
	Hits   int64
	Misses int64
}
