// Package format provides the physical format classification enricher.
package format

import (
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// DefaultShortStoryMax is the exclusive page count bound for short stories.
const DefaultShortStoryMax = 50

// DefaultNovellaMax is the exclusive page count bound for novellas.
const DefaultNovellaMax = 150

// Processor assigns a format tag from page count and edition hints.
// It implements the Enricher interface.
type Processor struct {
	shortStoryMax int
	novellaMax    int
}

// Option configures the format enricher.
type Option func(*Processor)

// WithShortStoryMax sets the exclusive page bound for short stories.
func WithShortStoryMax(pages int) Option {
	return func(p *Processor) {
		if pages > 0 {
			p.shortStoryMax = pages
		}
	}
}

// WithNovellaMax sets the exclusive page bound for novellas.
func WithNovellaMax(pages int) Option {
	return func(p *Processor) {
		if pages > 0 {
			p.novellaMax = pages
		}
	}
}

// New creates a format classification enricher with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		shortStoryMax: DefaultShortStoryMax,
		novellaMax:    DefaultNovellaMax,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.novellaMax < p.shortStoryMax {
		p.novellaMax = p.shortStoryMax
	}

	return p
}

// Name returns the enricher name.
func (p *Processor) Name() string {
	return "format"
}

// Enrich sets the book's format tag.
// Archival primary sources keep that designation regardless of length.
// A zero page count means the sources never reported one.
func (p *Processor) Enrich(book *domain.Book) error {
	book.Format = p.classify(book)
	return nil
}

func (p *Processor) classify(book *domain.Book) domain.FormatTag {
	switch {
	case book.PrimarySource:
		return domain.FormatPrimarySource
	case book.PageCount <= 0:
		return domain.FormatUnknown
	case book.PageCount < p.shortStoryMax:
		return domain.FormatShortStory
	case book.PageCount < p.novellaMax:
		return domain.FormatNovella
	case book.IsEbook:
		return domain.FormatEbook
	default:
		return domain.FormatNovel
	}
}
