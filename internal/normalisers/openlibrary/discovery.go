package openlibrary

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/normalisers/htmltext"
)

// authorPage represents the JSON content of an author entity.
type authorPage struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Bio       flexText `json:"bio"`
	BirthDate string   `json:"birth_date"`
	DeathDate string   `json:"death_date"`
	Photos    []int64  `json:"photos"`
}

// NormaliseAuthor parses an author entity payload. The bibliography is
// left empty for the discovery service to fill.
func (n *Normaliser) NormaliseAuthor(raw domain.RawRecord) (domain.AuthorProfile, error) {
	var page authorPage
	if err := json.Unmarshal(raw.Payload, &page); err != nil {
		return domain.AuthorProfile{}, fmt.Errorf("parse author: %w", err)
	}

	profile := domain.AuthorProfile{
		Key:       bareKey(page.Key),
		Name:      page.Name,
		Bio:       htmltext.Strip(string(page.Bio)),
		BirthDate: page.BirthDate,
		DeathDate: page.DeathDate,
		Source:    domain.ProvenanceOpenLibrary,
	}

	// Negative photo ids mark deleted portraits.
	if len(page.Photos) > 0 && page.Photos[0] > 0 {
		profile.PhotoURL = fmt.Sprintf("https://covers.openlibrary.org/a/id/%d-L.jpg", page.Photos[0])
	}
	return profile, nil
}

// workPage represents the JSON content of a work entity.
type workPage struct {
	Description   flexText   `json:"description"`
	Subjects      []flexName `json:"subjects"`
	SubjectPlaces []flexName `json:"subject_places"`
	SubjectTimes  []flexName `json:"subject_times"`
}

// NormaliseWorkDetails parses a work entity payload into the fields
// used for lookup enrichment.
func (n *Normaliser) NormaliseWorkDetails(raw domain.RawRecord) (domain.WorkDetails, error) {
	var page workPage
	if err := json.Unmarshal(raw.Payload, &page); err != nil {
		return domain.WorkDetails{}, fmt.Errorf("parse work: %w", err)
	}

	subjects := names(page.Subjects)
	subjects = append(subjects, names(page.SubjectPlaces)...)
	subjects = append(subjects, names(page.SubjectTimes)...)

	return domain.WorkDetails{
		Description: htmltext.Strip(string(page.Description)),
		Subjects:    subjects,
	}, nil
}

// editionsPage represents the JSON content of an editions listing.
type editionsPage struct {
	Size    int            `json:"size"`
	Entries []editionEntry `json:"entries"`
}

type editionEntry struct {
	Key           string      `json:"key"`
	Title         string      `json:"title"`
	PublishDate   string      `json:"publish_date"`
	Publishers    []flexName  `json:"publishers"`
	ISBN13        []string    `json:"isbn_13"`
	ISBN10        []string    `json:"isbn_10"`
	NumberOfPages int         `json:"number_of_pages"`
	Identifiers   identifiers `json:"identifiers"`
}

// NormaliseWorkEditions parses an editions listing. Entries that bury
// their ISBNs in a nested identifier map have them lifted to the
// top-level lists.
func (n *Normaliser) NormaliseWorkEditions(raw domain.RawRecord) (domain.WorkEditions, error) {
	var page editionsPage
	if err := json.Unmarshal(raw.Payload, &page); err != nil {
		return domain.WorkEditions{}, fmt.Errorf("parse editions: %w", err)
	}

	entries := make([]domain.Edition, 0, len(page.Entries))
	for _, entry := range page.Entries {
		isbn13s := entry.ISBN13
		isbn10s := entry.ISBN10
		if len(isbn13s) == 0 && len(isbn10s) == 0 {
			isbn13s = entry.Identifiers.ISBN13
			isbn10s = entry.Identifiers.ISBN10
		}

		entries = append(entries, domain.Edition{
			Key:         bareKey(entry.Key),
			Title:       entry.Title,
			PublishDate: entry.PublishDate,
			Publishers:  names(entry.Publishers),
			ISBN13s:     isbn13s,
			ISBN10s:     isbn10s,
			PageCount:   entry.NumberOfPages,
		})
	}

	size := page.Size
	if size == 0 {
		size = len(entries)
	}

	return domain.WorkEditions{
		Key:     raw.SourceID,
		Size:    size,
		Entries: entries,
	}, nil
}
