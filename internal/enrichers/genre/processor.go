// Package genre provides the heuristic genre back-fill enricher.
package genre

import (
	"sort"
	"strings"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// DefaultMinSubjects is the subject count below which back-fill runs.
// Records that already carry this many authoritative tags are left alone.
const DefaultMinSubjects = 2

// Processor infers genre tags from title and description keywords.
// It only ever adds tags, and only to records with a sparse taxonomy:
// a rich set of catalog subjects must never be diluted by a guess.
// It implements the Enricher interface.
type Processor struct {
	keywords    map[string]string
	minSubjects int
}

// Option configures the genre enricher.
type Option func(*Processor)

// WithMinSubjects sets the subject count threshold for back-fill.
func WithMinSubjects(n int) Option {
	return func(p *Processor) {
		if n >= 0 {
			p.minSubjects = n
		}
	}
}

// New creates a genre back-fill enricher from a keyword to tag mapping.
func New(keywords map[string]string, opts ...Option) *Processor {
	lowered := make(map[string]string, len(keywords))
	for keyword, tag := range keywords {
		lowered[strings.ToLower(keyword)] = tag
	}

	p := &Processor{
		keywords:    lowered,
		minSubjects: DefaultMinSubjects,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the enricher name.
func (p *Processor) Name() string {
	return "genre"
}

// Enrich adds inferred genre tags when the book's subject list is sparse.
// Books at or above the threshold pass through untouched.
func (p *Processor) Enrich(book *domain.Book) error {
	if len(book.Subjects) >= p.minSubjects {
		return nil
	}

	text := strings.ToLower(book.Title + " " + book.Description)

	seen := make(map[string]struct{}, len(book.Subjects))
	tags := make([]string, 0, len(book.Subjects))
	for _, subject := range book.Subjects {
		seen[strings.ToLower(subject)] = struct{}{}
		tags = append(tags, subject)
	}

	for keyword, tag := range p.keywords {
		if !strings.Contains(text, keyword) {
			continue
		}
		lower := strings.ToLower(tag)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return nil
	}
	sort.Strings(tags)
	book.Subjects = tags
	return nil
}
