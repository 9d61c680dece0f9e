package domain

// Edition is one published edition of a work.
type Edition struct {
	// Key is the catalog-native edition key.
	Key string

	// Title is the edition title.
	Title string

	// PublishDate is the edition publication date string.
	PublishDate string

	// Publishers lists the edition's publishers.
	Publishers []string

	// ISBN13s and ISBN10s list the edition's identifiers. Editions that
	// bury identifiers in a nested identifier map have them lifted here
	// by the normaliser.
	ISBN13s []string
	ISBN10s []string

	// PageCount is the page count. Zero means unreported.
	PageCount int
}

// WorkEditions lists the catalogued editions of one work.
type WorkEditions struct {
	// Key is the work key the editions belong to.
	Key string

	// Size is the total number of editions the catalog holds.
	Size int

	// Entries holds the fetched editions.
	Entries []Edition
}

// WorkDetails carries the work-level fields used to enrich a lookup.
type WorkDetails struct {
	// Description is the work-level synopsis, HTML-cleaned.
	Description string

	// Subjects combines the work's subject, place, and time headings,
	// still raw.
	Subjects []string
}
