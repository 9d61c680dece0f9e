package enrichers

import (
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/enrichers/categories"
	"github.com/custodia-labs/bookdex-cli/internal/enrichers/format"
	"github.com/custodia-labs/bookdex-cli/internal/enrichers/genre"
	"github.com/custodia-labs/bookdex-cli/internal/enrichers/safety"
	"github.com/custodia-labs/bookdex-cli/internal/enrichers/series"
)

// RegisterDefaults registers all built-in enrichers with the registry.
// Call this during application initialisation to enable standard enrichers.
func RegisterDefaults(r *Registry) {
	r.Register("categories", buildCategories)
	r.Register("genre", buildGenre)
	r.Register("series", buildSeries)
	r.Register("format", buildFormat)
	r.Register("safety", buildSafety)
}

// DefaultPipeline builds the standard enrichment pipeline in its fixed
// order. Subject cleanup runs first so the genre threshold counts clean
// authoritative tags; safety runs last so it sees back-filled tags too.
func DefaultPipeline(vocab domain.Vocabulary, tagging domain.TaggingSettings) *Pipeline {
	return NewPipeline(
		categories.New(vocab.CategoryStopWords),
		genre.New(vocab.GenreKeywords, genre.WithMinSubjects(tagging.MinSubjects)),
		series.New(vocab.SeriesStopTerms),
		format.New(),
		safety.New(vocab.SafetyTriggers),
	)
}

// buildCategories creates the subject normalisation enricher.
func buildCategories(vocab domain.Vocabulary, _ map[string]any) (driven.Enricher, error) {
	return categories.New(vocab.CategoryStopWords), nil
}

// buildGenre creates the genre back-fill enricher from generic config.
// Supported config keys:
//   - min_subjects (int): Subject count below which back-fill runs (default: 2)
func buildGenre(vocab domain.Vocabulary, cfg map[string]any) (driven.Enricher, error) {
	var opts []genre.Option

	if cfg != nil {
		if n := getIntFromConfig(cfg, "min_subjects"); n > 0 {
			opts = append(opts, genre.WithMinSubjects(n))
		}
	}

	return genre.New(vocab.GenreKeywords, opts...), nil
}

// buildSeries creates the series detection enricher.
func buildSeries(vocab domain.Vocabulary, _ map[string]any) (driven.Enricher, error) {
	return series.New(vocab.SeriesStopTerms), nil
}

// buildFormat creates the format classification enricher from generic config.
// Supported config keys:
//   - short_story_max (int): Exclusive page bound for short stories (default: 50)
//   - novella_max (int): Exclusive page bound for novellas (default: 150)
func buildFormat(_ domain.Vocabulary, cfg map[string]any) (driven.Enricher, error) {
	var opts []format.Option

	if cfg != nil {
		if pages := getIntFromConfig(cfg, "short_story_max"); pages > 0 {
			opts = append(opts, format.WithShortStoryMax(pages))
		}
		if pages := getIntFromConfig(cfg, "novella_max"); pages > 0 {
			opts = append(opts, format.WithNovellaMax(pages))
		}
	}

	return format.New(opts...), nil
}

// buildSafety creates the content-safety enricher.
func buildSafety(vocab domain.Vocabulary, _ map[string]any) (driven.Enricher, error) {
	return safety.New(vocab.SafetyTriggers), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
