// Package loc normalises Library of Congress item payloads.
package loc

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/normalisers/htmltext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// maxContributors caps how many archival contributors become authors.
// Catalogue records list editors, illustrators, and translators after
// the primary names.
const maxContributors = 3

// yearPattern extracts the first four-digit year from archival date
// strings, which range from bare years to bracketed prose.
var yearPattern = regexp.MustCompile(`\d{4}`)

// Normaliser handles Library of Congress items. Search results and
// direct item retrievals share one shape with per-endpoint field
// variance, absorbed by flexible decoding.
type Normaliser struct{}

// New creates a new Library of Congress normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Provenance returns the catalog origin this normaliser handles.
func (n *Normaliser) Provenance() domain.Provenance {
	return domain.ProvenanceLOC
}

// item represents the JSON content of a catalogue item. Several
// fields arrive as either a scalar or a list depending on the
// endpoint.
type item struct {
	ID               flexString       `json:"id"`
	URL              flexString       `json:"url"`
	Title            string           `json:"title"`
	Date             flexString       `json:"date"`
	Publisher        flexString       `json:"publisher"`
	Subject          stringList       `json:"subject"`
	Summary          stringList       `json:"summary"`
	Description      stringList       `json:"description"`
	ContributorNames []contributorRef `json:"contributor_names"`
	Contributor      []contributorRef `json:"contributor"`
	LCCN             stringList       `json:"lccn"`
	LCCNAlt          stringList       `json:"library_of_congress_control_number"`
}

// Normalise converts a catalogue item payload to a source record.
func (n *Normaliser) Normalise(_ context.Context, raw domain.RawRecord) (domain.SourceRecord, error) {
	var it item
	if err := json.Unmarshal(raw.Payload, &it); err != nil {
		return domain.SourceRecord{}, fmt.Errorf("parse item: %w", err)
	}

	contributors := it.ContributorNames
	if len(contributors) == 0 {
		contributors = it.Contributor
	}
	authors := make([]domain.Author, 0, maxContributors)
	for _, contributor := range contributors {
		if len(authors) == maxContributors {
			break
		}
		if contributor != "" {
			authors = append(authors, domain.Author{Name: string(contributor)})
		}
	}

	description := strings.Join(it.Summary, " ")
	if description == "" {
		description = strings.Join(it.Description, " ")
	}

	return domain.SourceRecord{
		Provenance:    domain.ProvenanceLOC,
		SourceID:      sourceID(it),
		Title:         it.Title,
		Authors:       authors,
		Categories:    it.Subject,
		Description:   htmltext.Strip(description),
		Publisher:     string(it.Publisher),
		PublishedDate: yearPattern.FindString(string(it.Date)),
		PrimarySource: raw.PrimarySource,
	}, nil
}

// sourceID picks the item identifier: the control number when
// catalogued, else the item id or url.
func sourceID(it item) string {
	lccns := it.LCCN
	if len(lccns) == 0 {
		lccns = it.LCCNAlt
	}
	if len(lccns) > 0 && lccns[0] != "" {
		return lccns[0]
	}
	if it.ID != "" {
		return string(it.ID)
	}
	return string(it.URL)
}

// flexString decodes a field that arrives as either a string or a
// list of strings, keeping the first entry.
type flexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if len(list) > 0 {
		*f = flexString(list[0])
	}
	return nil
}

// stringList decodes a field that arrives as either a single string
// or a list of strings.
type stringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *stringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "" {
			*l = stringList{s}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = stringList(list)
	return nil
}

// contributorRef decodes archival contributor entries, which appear as
// bare names, objects with a name field, or single-pair maps keyed by
// the name itself.
type contributorRef string

// UnmarshalJSON implements json.Unmarshaler.
func (c *contributorRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = contributorRef(s)
		return nil
	}

	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &named); err == nil && named.Name != "" {
		*c = contributorRef(named.Name)
		return nil
	}

	var pair map[string]any
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) == 1 {
		for name := range pair {
			*c = contributorRef(name)
		}
	}
	return nil
}
