package domain

import "strings"

// AuthorProfile is the discovery page for one author.
type AuthorProfile struct {
	// Key is the identifier the profile was requested under: an Open
	// Library author key, or the author name itself for generated
	// profiles.
	Key string

	// Name is the display name.
	Name string

	// Bio is the biography, HTML-cleaned. For generated profiles it is
	// a fixed notice.
	Bio string

	// BirthDate and DeathDate are the lifespan strings as catalogued.
	BirthDate string
	DeathDate string

	// PhotoURL points at the author portrait, when one exists.
	PhotoURL string

	// Books is the bibliography, resolved and merged.
	Books []Book

	// Source is the catalog the profile was built from.
	Source Provenance
}

// IsAuthorKey reports whether id looks like an Open Library author key
// ("OL…A"). Anything else is treated as an author name.
func IsAuthorKey(id string) bool {
	return strings.HasPrefix(id, "OL") && strings.HasSuffix(id, "A") && len(id) > 3
}

// IsWorkKey reports whether id looks like an Open Library work key
// ("OL…W").
func IsWorkKey(id string) bool {
	return strings.HasPrefix(id, "OL") && strings.HasSuffix(id, "W") && len(id) > 3
}
