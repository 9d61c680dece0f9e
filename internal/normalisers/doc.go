// Package normalisers provides implementations of the Normaliser
// interface for each book catalog. Each normaliser knows how to parse
// one catalog's payload shapes into SourceRecords.
//
// Normalisers are registered with the Registry at startup.
package normalisers
