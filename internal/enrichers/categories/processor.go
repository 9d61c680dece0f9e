// Package categories provides the subject normalisation enricher.
package categories

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// separatorPattern splits hierarchical catalog subjects such as
// "Fiction / Fantasy / Epic" or "Science fiction--History" into parts.
var separatorPattern = regexp.MustCompile(`[/]+|--`)

// Processor explodes raw subject strings into clean atomic tags.
// It implements the Enricher interface.
type Processor struct {
	stopWords map[string]struct{}
}

// New creates a subject normalisation enricher.
// Stop words are compared case-insensitively against each exploded part.
func New(stopWords []string) *Processor {
	stops := make(map[string]struct{}, len(stopWords))
	for _, word := range stopWords {
		stops[strings.ToLower(word)] = struct{}{}
	}
	return &Processor{stopWords: stops}
}

// Name returns the enricher name.
func (p *Processor) Name() string {
	return "categories"
}

// Enrich replaces the book's subjects with their normalised form.
// Normalisation is idempotent: running it on already-clean subjects
// changes nothing.
func (p *Processor) Enrich(book *domain.Book) error {
	book.Subjects = p.normalise(book.Subjects)
	return nil
}

// normalise splits each raw subject on "/" and "--" separators, trims the
// parts, drops stop words and empties, deduplicates case-insensitively
// keeping the first casing seen, and returns the survivors sorted.
func (p *Processor) normalise(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0, len(raw))

	for _, entry := range raw {
		for _, part := range separatorPattern.Split(entry, -1) {
			clean := strings.TrimSpace(part)
			if clean == "" {
				continue
			}
			lower := strings.ToLower(clean)
			if _, stop := p.stopWords[lower]; stop {
				continue
			}
			if _, dup := seen[lower]; dup {
				continue
			}
			seen[lower] = struct{}{}
			tags = append(tags, clean)
		}
	}

	if len(tags) == 0 {
		return nil
	}
	sort.Strings(tags)
	return tags
}
