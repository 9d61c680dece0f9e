package domain

// RecordShape hints which endpoint payload a raw record carries, for
// catalogs whose endpoints answer in more than one shape.
type RecordShape string

// Payload shapes.
const (
	// ShapeSearchDoc is a search result document (flat string lists).
	ShapeSearchDoc RecordShape = "search_doc"

	// ShapeDataRecord is a full bibliographic record (nested objects).
	ShapeDataRecord RecordShape = "data_record"
)

// RawRecord is one catalog item as fetched, before normalisation.
// The payload is opaque to the core: connectors produce it, the
// matching normaliser parses it, and nothing in between inspects it.
type RawRecord struct {
	// Provenance tags the catalog the payload came from.
	Provenance Provenance

	// SourceID is the catalog-native identifier when the connector
	// could extract it cheaply, empty otherwise.
	SourceID string

	// Shape hints at the payload layout for catalogs with several
	// response shapes. Normalisers for single-shape catalogs ignore it.
	Shape RecordShape

	// Payload is the raw JSON for a single catalog item.
	Payload []byte

	// PrimarySource marks archival keyword-search hits, which describe
	// primary-source material rather than published editions.
	PrimarySource bool
}
