// Package googlebooks normalises Google Books volume payloads.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/normalisers/htmltext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Google Books volumes. Search results and direct
// volume retrievals share the same shape, trimmed by field projection.
type Normaliser struct{}

// New creates a new Google Books normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Provenance returns the catalog origin this normaliser handles.
func (n *Normaliser) Provenance() domain.Provenance {
	return domain.ProvenanceGoogle
}

// volume represents the JSON content of a volume.
type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
	SaleInfo   saleInfo   `json:"saleInfo"`
}

type volumeInfo struct {
	Title               string       `json:"title"`
	Subtitle            string       `json:"subtitle"`
	Authors             []string     `json:"authors"`
	Publisher           string       `json:"publisher"`
	PublishedDate       string       `json:"publishedDate"`
	Description         string       `json:"description"`
	PageCount           int          `json:"pageCount"`
	AverageRating       float64      `json:"averageRating"`
	RatingsCount        int          `json:"ratingsCount"`
	Categories          []string     `json:"categories"`
	ImageLinks          imageLinks   `json:"imageLinks"`
	IndustryIdentifiers []identifier `json:"industryIdentifiers"`
}

type identifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
	Small          string `json:"small"`
	Medium         string `json:"medium"`
	Large          string `json:"large"`
	ExtraLarge     string `json:"extraLarge"`
}

type saleInfo struct {
	IsEbook bool `json:"isEbook"`
}

// Normalise converts a volume payload to a source record.
func (n *Normaliser) Normalise(_ context.Context, raw domain.RawRecord) (domain.SourceRecord, error) {
	var vol volume
	if err := json.Unmarshal(raw.Payload, &vol); err != nil {
		return domain.SourceRecord{}, fmt.Errorf("parse volume: %w", err)
	}

	info := vol.VolumeInfo
	isbn13, isbn10, related := splitIdentifiers(info.IndustryIdentifiers)

	authors := make([]domain.Author, 0, len(info.Authors))
	for _, name := range info.Authors {
		authors = append(authors, domain.Author{Name: name})
	}

	covers := domain.CoverSet{
		SmallThumbnail: htmltext.EnsureHTTPS(info.ImageLinks.SmallThumbnail),
		Thumbnail:      htmltext.EnsureHTTPS(info.ImageLinks.Thumbnail),
		Small:          htmltext.EnsureHTTPS(info.ImageLinks.Small),
		Medium:         htmltext.EnsureHTTPS(info.ImageLinks.Medium),
		Large:          htmltext.EnsureHTTPS(info.ImageLinks.Large),
		ExtraLarge:     htmltext.EnsureHTTPS(info.ImageLinks.ExtraLarge),
	}

	return domain.SourceRecord{
		Provenance:    domain.ProvenanceGoogle,
		SourceID:      vol.ID,
		Title:         info.Title,
		Subtitle:      info.Subtitle,
		Authors:       authors,
		ISBN13:        isbn13,
		ISBN10:        isbn10,
		Categories:    info.Categories,
		Description:   htmltext.Strip(info.Description),
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		PageCount:     info.PageCount,
		IsEbook:       vol.SaleInfo.IsEbook,
		Rating:        info.AverageRating,
		RatingCount:   info.RatingsCount,
		CoverURL:      listCover(covers, isbn13, isbn10),
		Covers:        covers,
		RelatedISBNs:  related,
	}, nil
}

// splitIdentifiers picks the first ISBN of each width and keeps the
// complete identifier list.
func splitIdentifiers(ids []identifier) (isbn13, isbn10 string, related []string) {
	for _, id := range ids {
		switch {
		case id.Type == "ISBN_13" && isbn13 == "":
			isbn13 = id.Identifier
		case id.Type == "ISBN_10" && isbn10 == "":
			isbn10 = id.Identifier
		}
		if id.Identifier != "" {
			related = append(related, id.Identifier)
		}
	}
	return isbn13, isbn10, related
}

// listCover picks the list-view cover: the smallest available image
// link, falling back to the by-ISBN cover service.
func listCover(covers domain.CoverSet, isbn13, isbn10 string) string {
	candidates := []string{
		covers.Thumbnail,
		covers.SmallThumbnail,
		covers.Small,
		covers.Medium,
		covers.Large,
	}
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}

	isbn := isbn13
	if isbn == "" {
		isbn = isbn10
	}
	if isbn == "" {
		return ""
	}
	return fmt.Sprintf("https://covers.openlibrary.org/b/isbn/%s-M.jpg", isbn)
}
