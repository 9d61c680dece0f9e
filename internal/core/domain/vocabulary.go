package domain

// Vocabulary holds the keyword tables driving the heuristic
// classifiers. The tables are data, not code: they load once at
// startup from the vocabulary store and never change afterwards.
type Vocabulary struct {
	// CategoryStopWords are dropped during category normalisation,
	// compared case-insensitively against each split part.
	CategoryStopWords []string

	// GenreKeywords maps a lowercase keyword to the genre tag it
	// implies ("dragon" to "Fantasy").
	GenreKeywords map[string]string

	// SafetyTriggers flag mature content when found as substrings of
	// the lowercased description and subjects.
	SafetyTriggers []string

	// SeriesStopTerms reject a captured series name that equals one of
	// them case-insensitively.
	SeriesStopTerms []string

	// ReprintTriggers reject releases whose title marks a reissue.
	ReprintTriggers []string

	// TitleBlacklist rejects releases whose title contains one of
	// these known junk titles.
	TitleBlacklist []string
}
