// Package safety provides the content-safety flag enricher.
package safety

import (
	"strings"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// Processor flags mature content from description and subject text.
// It implements the Enricher interface.
type Processor struct {
	triggers []string
}

// New creates a content-safety enricher with the given trigger vocabulary.
// Triggers are matched as lowercase substrings.
func New(triggers []string) *Processor {
	lowered := make([]string, 0, len(triggers))
	for _, trigger := range triggers {
		lowered = append(lowered, strings.ToLower(trigger))
	}
	return &Processor{triggers: lowered}
}

// Name returns the enricher name.
func (p *Processor) Name() string {
	return "safety"
}

// Enrich flags the book when any trigger appears in its description or
// subjects. Matching only ever raises the flag, never clears it.
func (p *Processor) Enrich(book *domain.Book) error {
	if book.ContentFlag == domain.ContentMature {
		return nil
	}

	text := strings.ToLower(book.Description + " " + strings.Join(book.Subjects, " "))
	for _, trigger := range p.triggers {
		if strings.Contains(text, trigger) {
			book.ContentFlag = domain.ContentMature
			return nil
		}
	}

	return nil
}
