package file

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Ensure VocabularyStore implements the interface.
var _ driven.VocabularyStore = (*VocabularyStore)(nil)

//go:embed vocabulary.toml
var defaultVocabulary []byte

// VocabularyStore loads the heuristic keyword tables. The embedded
// defaults always apply; a user override file, when present, replaces
// tables wholesale. Empty override tables are ignored.
//
// The store never writes the override file; creating it is up to the
// user.
type VocabularyStore struct {
	overridePath string
}

// NewVocabularyStore creates a vocabulary store.
// If configDir is empty, the override is looked for at
// ~/.bookdex/vocabulary.toml.
func NewVocabularyStore(configDir string) (*VocabularyStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".bookdex")
	}

	return &VocabularyStore{
		overridePath: filepath.Join(configDir, "vocabulary.toml"),
	}, nil
}

// Load returns the vocabulary, merging any user override file over the
// embedded defaults.
func (s *VocabularyStore) Load() (domain.Vocabulary, error) {
	tables, err := parseVocabulary(defaultVocabulary)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("parse embedded vocabulary: %w", err)
	}

	raw, err := os.ReadFile(s.overridePath)
	if err != nil {
		if os.IsNotExist(err) {
			return tables.toDomain(), nil
		}
		return domain.Vocabulary{}, err
	}

	override, err := parseVocabulary(raw)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("parse %s: %w", s.overridePath, err)
	}

	tables.apply(override)
	return tables.toDomain(), nil
}

// Path returns the user override file path.
func (s *VocabularyStore) Path() string {
	return s.overridePath
}

// vocabularyFile mirrors domain.Vocabulary with the TOML key names.
type vocabularyFile struct {
	CategoryStopWords []string          `toml:"category_stop_words"`
	GenreKeywords     map[string]string `toml:"genre_keywords"`
	SafetyTriggers    []string          `toml:"safety_triggers"`
	SeriesStopTerms   []string          `toml:"series_stop_terms"`
	ReprintTriggers   []string          `toml:"reprint_triggers"`
	TitleBlacklist    []string          `toml:"title_blacklist"`
}

func parseVocabulary(raw []byte) (vocabularyFile, error) {
	var f vocabularyFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return vocabularyFile{}, err
	}
	return f, nil
}

// apply replaces each table the override fills in; absent or empty
// tables keep their defaults.
func (f *vocabularyFile) apply(o vocabularyFile) {
	if len(o.CategoryStopWords) > 0 {
		f.CategoryStopWords = o.CategoryStopWords
	}
	if len(o.GenreKeywords) > 0 {
		f.GenreKeywords = o.GenreKeywords
	}
	if len(o.SafetyTriggers) > 0 {
		f.SafetyTriggers = o.SafetyTriggers
	}
	if len(o.SeriesStopTerms) > 0 {
		f.SeriesStopTerms = o.SeriesStopTerms
	}
	if len(o.ReprintTriggers) > 0 {
		f.ReprintTriggers = o.ReprintTriggers
	}
	if len(o.TitleBlacklist) > 0 {
		f.TitleBlacklist = o.TitleBlacklist
	}
}

func (f vocabularyFile) toDomain() domain.Vocabulary {
	return domain.Vocabulary{
		CategoryStopWords: f.CategoryStopWords,
		GenreKeywords:     f.GenreKeywords,
		SafetyTriggers:    f.SafetyTriggers,
		SeriesStopTerms:   f.SeriesStopTerms,
		ReprintTriggers:   f.ReprintTriggers,
		TitleBlacklist:    f.TitleBlacklist,
	}
}
