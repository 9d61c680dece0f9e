package domain

// FormatTag classifies the physical shape of a record.
type FormatTag int

const (
	// FormatUnknown means no page count was reported.
	FormatUnknown FormatTag = iota

	// FormatShortStory is under 50 pages.
	FormatShortStory

	// FormatNovella is under 150 pages.
	FormatNovella

	// FormatEbook is an electronic edition of novel length.
	FormatEbook

	// FormatNovel is everything else.
	FormatNovel

	// FormatPrimarySource marks archival primary-source material.
	// Page count rules never produce it; archival provenance does.
	FormatPrimarySource
)

// String returns the display label.
func (f FormatTag) String() string {
	switch f {
	case FormatShortStory:
		return "Short Story"
	case FormatNovella:
		return "Novella"
	case FormatEbook:
		return "eBook"
	case FormatNovel:
		return "Novel"
	case FormatPrimarySource:
		return "Primary Source"
	default:
		return "Unknown Format"
	}
}

// ContentFlag marks records whose text tripped the safety vocabulary.
type ContentFlag int

const (
	// ContentNone means no trigger matched.
	ContentNone ContentFlag = iota

	// ContentMature means a mature-content trigger matched.
	ContentMature
)

// String returns the display label, empty for ContentNone.
func (c ContentFlag) String() string {
	if c == ContentMature {
		return "Mature Content"
	}
	return ""
}

// Series describes detected series membership.
type Series struct {
	// Name is the series name as captured from the title.
	Name string

	// Order is the position within the series, nil when the pattern
	// carried no number ("… Trilogy", "… Series").
	Order *int
}

// CoverSet groups cover image URLs at the standard catalog sizes.
// Absent sizes are empty strings; URLs are https-upgraded.
type CoverSet struct {
	// SmallThumbnail is the tiny list thumbnail.
	SmallThumbnail string

	// Thumbnail is the standard list thumbnail.
	Thumbnail string

	// Small is the small detail image.
	Small string

	// Medium is the medium detail image.
	Medium string

	// Large is the large detail image.
	Large string

	// ExtraLarge is the full-resolution image, when published.
	ExtraLarge string
}

// Book is the canonical merged record for one identity.
// Exactly one Book exists per distinct identity key within a single
// resolution pass. Scalar fields obey fill-only semantics: a value set
// from a higher-tier source is never overwritten by a lower-tier one.
type Book struct {
	// IdentityKey is the grouping key this book was resolved under.
	// Never displayed.
	IdentityKey string

	// Title is the merged title.
	Title string

	// Subtitle is the merged subtitle.
	Subtitle string

	// Authors is the contributor list. Wholesale-replaced by the first
	// source that supplies one; later sources may only enrich entries.
	Authors []Author

	// ISBN13 is the canonical 13-digit identifier.
	ISBN13 string

	// ISBN10 is the 10-character identifier.
	ISBN10 string

	// Description is the merged synopsis.
	Description string

	// Publisher is the merged publisher name.
	Publisher string

	// PublishedDate is the merged publication date.
	PublishedDate string

	// PageCount is the merged page count. Zero means unreported.
	PageCount int

	// IsEbook is true when any contributing source reported an
	// electronic edition.
	IsEbook bool

	// Rating is the average reader rating. Zero means unrated.
	Rating float64

	// RatingCount is the number of ratings behind Rating.
	RatingCount int

	// CoverURL points at the list-view cover image.
	CoverURL string

	// Covers holds the full provider image set for detail views.
	Covers CoverSet

	// Subjects is the normalised, deduplicated subject set, sorted.
	Subjects []string

	// Series is the detected series membership, nil when none.
	Series *Series

	// PrimarySource is true when an archival catalog marked any
	// contributing record as primary-source material.
	PrimarySource bool

	// Format is the classified format tag.
	Format FormatTag

	// ContentFlag is the content-safety flag.
	ContentFlag ContentFlag

	// DataSources lists the provenance of every contributing record in
	// first-seen order. It only grows during merge; attribution is
	// preserved even for records that filled no field.
	DataSources []Provenance

	// SourceIDs maps each contributing catalog to its native record id.
	SourceIDs map[Provenance]string

	// WorkKey is the work-level grouping key, when known.
	WorkKey string

	// RelatedISBNs lists every identifier attached by any source.
	RelatedISBNs []string
}

// HasSource returns true if the given catalog contributed to this book.
func (b *Book) HasSource(p Provenance) bool {
	for _, s := range b.DataSources {
		if s == p {
			return true
		}
	}
	return false
}

// FirstAuthor returns the primary author name, empty when none.
func (b *Book) FirstAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0].Name
}
