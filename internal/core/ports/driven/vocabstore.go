package driven

import "github.com/custodia-labs/bookdex-cli/internal/core/domain"

// VocabularyStore loads the heuristic keyword tables.
// The tables are immutable after load; tuning them means editing the
// vocabulary file and restarting.
type VocabularyStore interface {
	// Load returns the vocabulary, merging any user override file over
	// the embedded defaults.
	Load() (domain.Vocabulary, error)

	// Path returns the user override file path.
	Path() string
}
