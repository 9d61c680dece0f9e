package domain

// Provenance identifies which upstream catalog contributed a record.
type Provenance string

// Known catalog origins.
const (
	// ProvenanceGoogle is the commercial catalog (Google Books).
	ProvenanceGoogle Provenance = "google"

	// ProvenanceOpenLibrary is the open catalog (Open Library).
	ProvenanceOpenLibrary Provenance = "open_library"

	// ProvenanceLOC is the archival catalog (Library of Congress).
	ProvenanceLOC Provenance = "loc"
)

// tierTable fixes the merge precedence: commercial beats open beats
// archival. Lower is stronger.
var tierTable = map[Provenance]int{
	ProvenanceGoogle:      0,
	ProvenanceOpenLibrary: 1,
	ProvenanceLOC:         2,
}

// Tier returns the merge precedence rank for this origin.
// Unknown origins rank below every known catalog.
func (p Provenance) Tier() int {
	if t, ok := tierTable[p]; ok {
		return t
	}
	return len(tierTable)
}

// IsValid returns true if the provenance is a known catalog origin.
func (p Provenance) IsValid() bool {
	_, ok := tierTable[p]
	return ok
}

// String returns the string representation.
func (p Provenance) String() string {
	return string(p)
}

// Author is one contributor entry on a record.
type Author struct {
	// Name is the display name. "Unknown" marks an unidentified author.
	Name string

	// SourceKey is the catalog-native author key, when the catalog
	// assigns one (e.g. an Open Library "OL…A" key).
	SourceKey string

	// Bio is a short biography, filled by enrichment when available.
	Bio string
}

// SourceRecord is one catalog's normalised view of a book.
// It is produced by a per-provider normaliser and is immutable once
// built; the core reads it but never mutates it.
type SourceRecord struct {
	// Provenance tags the catalog of origin. Fixed per normaliser.
	Provenance Provenance

	// SourceID is the catalog-native record identifier
	// (Google volume id, Open Library edition key, LOC item id).
	SourceID string

	// Title is the record title. Empty when the catalog omitted it.
	Title string

	// Subtitle is the record subtitle, when present.
	Subtitle string

	// Authors is the ordered contributor list.
	Authors []Author

	// ISBN13 is the 13-digit identifier as reported by the catalog.
	ISBN13 string

	// ISBN10 is the 10-character identifier as reported by the catalog.
	ISBN10 string

	// Categories holds raw subject strings. Hierarchical catalog
	// notation ("Fiction / Thrillers", "Cats -- Behavior") is preserved;
	// the category normaliser explodes it later.
	Categories []string

	// Description is the synopsis, already HTML-cleaned.
	Description string

	// Publisher is the publisher name.
	Publisher string

	// PublishedDate is the publication date as reported: a bare year,
	// "YYYY-MM", or a full "YYYY-MM-DD".
	PublishedDate string

	// PageCount is the page count. Zero means unreported.
	PageCount int

	// IsEbook is true when the catalog sells or serves this record as
	// an electronic edition.
	IsEbook bool

	// Rating is the average reader rating. Zero means unrated.
	Rating float64

	// RatingCount is the number of ratings behind Rating.
	RatingCount int

	// CoverURL points at the list-view cover image.
	CoverURL string

	// Covers holds the full provider image set, when the catalog
	// publishes more than one size.
	Covers CoverSet

	// WorkKey is the catalog's work-level grouping key, when the
	// catalog distinguishes works from editions.
	WorkKey string

	// RelatedISBNs lists every identifier the catalog attached to the
	// record, including the primary ones.
	RelatedISBNs []string

	// PrimarySource is true for archival records that represent
	// primary-source material rather than published editions.
	PrimarySource bool
}
