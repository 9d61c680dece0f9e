package domain

// Genre is one top-level entry in the fiction or non-fiction genre
// tree. Genres sharing an umbrella belong to the same broad family.
type Genre struct {
	// Umbrella is the family the genre belongs to ("Speculative
	// Fiction", "Informational/Academic").
	Umbrella string

	// Name is the display name.
	Name string

	// Description is a one-sentence definition.
	Description string

	// Subgenres are the leaf entries under this genre.
	Subgenres []Subgenre
}

// Subgenre is a leaf genre entry with the filter tags that identify
// it. Fiction entries use Tropes and MainCharacter; non-fiction
// entries use Subject, Tone and Format. Unused tags stay empty.
type Subgenre struct {
	Name          string
	Description   string
	Setting       string
	Themes        []string
	Tropes        []string
	MainCharacter string
	TimePeriod    string
	Subject       string
	Tone          string
	Format        string
}
