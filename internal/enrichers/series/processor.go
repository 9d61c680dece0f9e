// Package series provides the series membership detection enricher.
package series

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// maxNameLength rejects runaway captures from greedy patterns.
const maxNameLength = 50

// seriesPatterns are tried in order with first match winning. The
// numbered "Book N" forms must come before the looser Trilogy/Series
// forms, which would otherwise swallow the ordinal.
var seriesPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?P<name>.+?),?\s+Book\s+(?P<order>\d+)`),
	regexp.MustCompile(`(?i)Book\s+(?P<order>\d+)\s+of\s+(?P<name>.+)`),
	regexp.MustCompile(`(?i)(?P<name>.+?)\s+Trilogy`),
	regexp.MustCompile(`(?i)(?P<name>.+?)\s+Series`),
}

// Processor detects series membership from title and subtitle text.
// It implements the Enricher interface.
type Processor struct {
	stopTerms map[string]struct{}
}

// New creates a series detection enricher.
// Stop terms reject generic captured names such as "fiction" or "novel".
func New(stopTerms []string) *Processor {
	stops := make(map[string]struct{}, len(stopTerms))
	for _, term := range stopTerms {
		stops[strings.ToLower(term)] = struct{}{}
	}
	return &Processor{stopTerms: stops}
}

// Name returns the enricher name.
func (p *Processor) Name() string {
	return "series"
}

// Enrich sets the book's series when a pattern matches its title text.
// Books already carrying series data are left alone.
func (p *Processor) Enrich(book *domain.Book) error {
	if book.Series != nil {
		return nil
	}
	book.Series = p.detect(book.Title, book.Subtitle)
	return nil
}

// detect evaluates the patterns against "title subtitle" and returns the
// first acceptable match, or nil when nothing matches.
func (p *Processor) detect(title, subtitle string) *domain.Series {
	fullText := title + " " + subtitle

	for _, pattern := range seriesPatterns {
		match := pattern.FindStringSubmatch(fullText)
		if match == nil {
			continue
		}

		name := strings.TrimSpace(match[pattern.SubexpIndex("name")])
		if utf8.RuneCountInString(name) > maxNameLength {
			continue
		}
		if _, stop := p.stopTerms[strings.ToLower(name)]; stop {
			continue
		}

		series := &domain.Series{Name: name}
		if idx := pattern.SubexpIndex("order"); idx >= 0 {
			if order, err := strconv.Atoi(match[idx]); err == nil {
				series.Order = &order
			}
		}
		return series
	}

	return nil
}
