// Package connectors provides implementations of the Connector
// interface for each book catalog. Each connector knows how to query
// one provider's API and emit raw records for normalisation.
//
// The package root carries the response-cache plumbing shared by the
// provider subpackages.
package connectors
