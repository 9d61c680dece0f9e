// Package openlibrary normalises Open Library payloads: search
// documents, book data records, and the author and work entities used
// by discovery.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/normalisers/htmltext"
)

// Ensure Normaliser implements the interfaces.
var (
	_ driven.Normaliser          = (*Normaliser)(nil)
	_ driven.DiscoveryNormaliser = (*Normaliser)(nil)
)

// maxSearchSubjects caps subject headings taken from search documents,
// which often carry dozens per work.
const maxSearchSubjects = 8

// Normaliser handles Open Library records. The catalog serves two
// record shapes: compact search documents and full book data records;
// RawRecord.Shape selects the parser.
type Normaliser struct{}

// New creates a new Open Library normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Provenance returns the catalog origin this normaliser handles.
func (n *Normaliser) Provenance() domain.Provenance {
	return domain.ProvenanceOpenLibrary
}

// searchDoc represents the JSON content of a search document.
type searchDoc struct {
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	AuthorNames      []string `json:"author_name"`
	AuthorKeys       []string `json:"author_key"`
	ISBNs            []string `json:"isbn"`
	Key              string   `json:"key"`
	Publishers       []string `json:"publisher"`
	Subjects         []string `json:"subject"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverID          int64    `json:"cover_i"`
}

// dataRecord represents the JSON content of a book data record.
type dataRecord struct {
	Key           string      `json:"key"`
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle"`
	Authors       []authorRef `json:"authors"`
	Publishers    []flexName  `json:"publishers"`
	PublishDate   string      `json:"publish_date"`
	Description   flexText    `json:"description"`
	NumberOfPages int         `json:"number_of_pages"`
	Subjects      []flexName  `json:"subjects"`
	Works         []keyRef    `json:"works"`
	Identifiers   identifiers `json:"identifiers"`
}

type authorRef struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

type keyRef struct {
	Key string `json:"key"`
}

type identifiers struct {
	ISBN13 []string `json:"isbn_13"`
	ISBN10 []string `json:"isbn_10"`
}

// Normalise converts an Open Library payload to a source record,
// dispatching on the record shape.
func (n *Normaliser) Normalise(_ context.Context, raw domain.RawRecord) (domain.SourceRecord, error) {
	if raw.Shape == domain.ShapeDataRecord {
		return normaliseDataRecord(raw)
	}
	return normaliseSearchDoc(raw)
}

func normaliseSearchDoc(raw domain.RawRecord) (domain.SourceRecord, error) {
	var doc searchDoc
	if err := json.Unmarshal(raw.Payload, &doc); err != nil {
		return domain.SourceRecord{}, fmt.Errorf("parse search doc: %w", err)
	}

	authors := make([]domain.Author, 0, len(doc.AuthorNames))
	for i, name := range doc.AuthorNames {
		author := domain.Author{Name: name}
		if i < len(doc.AuthorKeys) {
			author.SourceKey = doc.AuthorKeys[i]
		}
		authors = append(authors, author)
	}

	isbn13, isbn10 := firstISBNs(doc.ISBNs)

	subjects := doc.Subjects
	if len(subjects) > maxSearchSubjects {
		subjects = subjects[:maxSearchSubjects]
	}

	var published string
	if doc.FirstPublishYear > 0 {
		published = strconv.Itoa(doc.FirstPublishYear)
	}

	var publisher string
	if len(doc.Publishers) > 0 {
		publisher = doc.Publishers[0]
	}

	var cover string
	if doc.CoverID > 0 {
		cover = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", doc.CoverID)
	}

	return domain.SourceRecord{
		Provenance:    domain.ProvenanceOpenLibrary,
		Title:         doc.Title,
		Subtitle:      doc.Subtitle,
		Authors:       authors,
		ISBN13:        isbn13,
		ISBN10:        isbn10,
		Categories:    subjects,
		Publisher:     publisher,
		PublishedDate: published,
		CoverURL:      cover,
		WorkKey:       bareKey(doc.Key),
	}, nil
}

func normaliseDataRecord(raw domain.RawRecord) (domain.SourceRecord, error) {
	var rec dataRecord
	if err := json.Unmarshal(raw.Payload, &rec); err != nil {
		return domain.SourceRecord{}, fmt.Errorf("parse data record: %w", err)
	}

	authors := make([]domain.Author, 0, len(rec.Authors))
	for _, ref := range rec.Authors {
		authors = append(authors, domain.Author{
			Name:      ref.Name,
			SourceKey: refAuthorKey(ref),
		})
	}

	var isbn13, isbn10 string
	if len(rec.Identifiers.ISBN13) > 0 {
		isbn13 = rec.Identifiers.ISBN13[0]
	}
	if len(rec.Identifiers.ISBN10) > 0 {
		isbn10 = rec.Identifiers.ISBN10[0]
	}

	related := make([]string, 0, len(rec.Identifiers.ISBN13)+len(rec.Identifiers.ISBN10))
	related = append(related, rec.Identifiers.ISBN13...)
	related = append(related, rec.Identifiers.ISBN10...)

	var workKey string
	if len(rec.Works) > 0 {
		workKey = bareKey(rec.Works[0].Key)
	}

	var publisher string
	if len(rec.Publishers) > 0 {
		publisher = string(rec.Publishers[0])
	}

	return domain.SourceRecord{
		Provenance:    domain.ProvenanceOpenLibrary,
		SourceID:      bareKey(rec.Key),
		Title:         rec.Title,
		Subtitle:      rec.Subtitle,
		Authors:       authors,
		ISBN13:        isbn13,
		ISBN10:        isbn10,
		Categories:    names(rec.Subjects),
		Description:   htmltext.Strip(string(rec.Description)),
		Publisher:     publisher,
		PublishedDate: rec.PublishDate,
		PageCount:     rec.NumberOfPages,
		WorkKey:       workKey,
		RelatedISBNs:  related,
	}, nil
}

// firstISBNs picks the first identifier of each width from a mixed
// isbn list.
func firstISBNs(isbns []string) (isbn13, isbn10 string) {
	for _, isbn := range isbns {
		switch {
		case len(isbn) == 13 && isbn13 == "":
			isbn13 = isbn
		case len(isbn) == 10 && isbn10 == "":
			isbn10 = isbn
		}
	}
	return isbn13, isbn10
}

// bareKey strips the type path from an Open Library key:
// "/works/OL8479867W" becomes "OL8479867W".
func bareKey(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// refAuthorKey extracts the author key from a reference. Data records
// sometimes omit the key field and carry it only inside the author
// page URL, whose last segment is a name slug, so every segment is
// checked.
func refAuthorKey(ref authorRef) string {
	if key := bareKey(ref.Key); domain.IsAuthorKey(key) {
		return key
	}
	for _, segment := range strings.Split(ref.URL, "/") {
		if domain.IsAuthorKey(segment) {
			return segment
		}
	}
	return ""
}
