// Package loc implements the Connector interface for the Library of
// Congress catalog API.
//
// The connector uses three endpoints. ISBN lookups go through the
// books endpoint and take the most relevant result. Control number
// lookups use the direct item endpoint, which resolves LCCNs far more
// reliably than search does. Free-text search uses the general search
// endpoint and covers material without ISBNs at all: manuscripts,
// legislation, photographs. Search results are tagged as primary
// source material, and results that are loc.gov web pages rather than
// catalog items are dropped.
//
// The catalog has no recency feed, so new releases are not supported.
// Requests carry a User-Agent header; the API blocks anonymous
// clients.
package loc
