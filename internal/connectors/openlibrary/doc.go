// Package openlibrary implements the Connector interface for the Open
// Library REST API.
//
// The connector covers the full surface the catalog exposes: free-text
// search and the recency-sorted feed via search.json, ISBN lookup via
// the books API in data mode, and the discovery endpoints for authors,
// works, and edition lists. Search responses arrive as compact search
// docs while ISBN lookups return richer data records; each raw record
// carries a shape tag so the normaliser can tell them apart.
//
// Open Library requires no API key. Requests identify themselves with
// a User-Agent header, are throttled through a shared token bucket,
// and back off when the API answers 429.
package openlibrary
