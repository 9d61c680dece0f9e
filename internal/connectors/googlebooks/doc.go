// Package googlebooks implements a connector for the Google Books
// volumes API.
//
// The connector speaks the generated books/v1 client and trims
// responses with field projections so list traffic stays small. An
// API key is optional: public volume queries work without one, with
// tighter quotas. Requests are throttled with a token bucket and 429
// responses set a backoff window.
//
// Search and new-releases results are emitted one raw record per
// volume, re-encoded to the wire shape for the normaliser.
package googlebooks
