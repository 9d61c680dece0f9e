package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Merger combines same-identity records into canonical books.
// Precedence follows the provenance tier table: within one group the
// records are stable-sorted by tier and scanned once, each scalar field
// keeping the first non-empty value it sees. A value set from a
// higher-tier source is never overwritten by a lower-tier one.
type Merger struct {
	pipeline driven.EnricherPipeline
}

// NewMerger creates a merger that runs each merged book through the
// given enrichment pipeline. A nil pipeline skips enrichment.
func NewMerger(pipeline driven.EnricherPipeline) *Merger {
	return &Merger{pipeline: pipeline}
}

// MergeAll resolves identities across the records and merges each
// group. Output order follows the first appearance of each identity
// key in the input.
func (m *Merger) MergeAll(records []domain.SourceRecord) ([]domain.Book, error) {
	keys, groups := groupRecords(records)

	books := make([]domain.Book, 0, len(keys))
	for _, key := range keys {
		book, err := m.Merge(key, groups[key])
		if err != nil {
			return nil, fmt.Errorf("merge %q: %w", key, err)
		}
		books = append(books, book)
	}

	return books, nil
}

// Merge combines one identity group into a canonical book and runs the
// enrichment pipeline over the result.
func (m *Merger) Merge(identityKey string, group []domain.SourceRecord) (domain.Book, error) {
	if len(group) == 0 {
		return domain.Book{}, domain.ErrNoSources
	}

	ordered := make([]domain.SourceRecord, len(group))
	copy(ordered, group)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Provenance.Tier() < ordered[j].Provenance.Tier()
	})

	book := domain.Book{
		IdentityKey: identityKey,
		SourceIDs:   make(map[domain.Provenance]string),
	}

	for _, record := range ordered {
		fillScalars(&book, record)

		if len(record.Authors) > 0 {
			if len(book.Authors) == 0 {
				book.Authors = append([]domain.Author(nil), record.Authors...)
			} else {
				enrichAuthors(book.Authors, record.Authors)
			}
		}

		book.Subjects = unionFold(book.Subjects, record.Categories)
		book.RelatedISBNs = unionFold(book.RelatedISBNs, record.RelatedISBNs)

		if !book.HasSource(record.Provenance) {
			book.DataSources = append(book.DataSources, record.Provenance)
		}
		if record.SourceID != "" {
			if _, taken := book.SourceIDs[record.Provenance]; !taken {
				book.SourceIDs[record.Provenance] = record.SourceID
			}
		}

		book.IsEbook = book.IsEbook || record.IsEbook
		book.PrimarySource = book.PrimarySource || record.PrimarySource
	}

	// Groups keyed by a derived ISBN-13 may contain only ISBN-10
	// records; the key itself is then the canonical identifier.
	if book.ISBN13 == "" && domain.ValidISBN13(identityKey) {
		book.ISBN13 = identityKey
	}

	if m.pipeline != nil {
		if err := m.pipeline.Enrich(&book); err != nil {
			return domain.Book{}, err
		}
	}

	return book, nil
}

// fillScalars copies each scalar field from the record into the book
// when the book's field is still unset.
func fillScalars(book *domain.Book, record domain.SourceRecord) {
	if book.Title == "" {
		book.Title = record.Title
	}
	if book.Subtitle == "" {
		book.Subtitle = record.Subtitle
	}
	if book.ISBN13 == "" {
		book.ISBN13 = record.ISBN13
	}
	if book.ISBN10 == "" {
		book.ISBN10 = record.ISBN10
	}
	if book.Description == "" {
		book.Description = record.Description
	}
	if book.Publisher == "" {
		book.Publisher = record.Publisher
	}
	if book.PublishedDate == "" {
		book.PublishedDate = record.PublishedDate
	}
	if book.PageCount == 0 {
		book.PageCount = record.PageCount
	}
	if book.Rating == 0 {
		book.Rating = record.Rating
	}
	if book.RatingCount == 0 {
		book.RatingCount = record.RatingCount
	}
	if book.CoverURL == "" {
		book.CoverURL = record.CoverURL
	}
	if book.Covers == (domain.CoverSet{}) {
		book.Covers = record.Covers
	}
	if book.WorkKey == "" {
		book.WorkKey = record.WorkKey
	}
}

// enrichAuthors fills gaps in the established author list from an
// incoming one. The list itself is never replaced or reordered; an
// incoming author matched by case-folded name may only contribute a
// missing source key or biography.
func enrichAuthors(established []domain.Author, incoming []domain.Author) {
	for i := range established {
		name := strings.ToLower(established[i].Name)
		for _, candidate := range incoming {
			if strings.ToLower(candidate.Name) != name {
				continue
			}
			if established[i].SourceKey == "" {
				established[i].SourceKey = candidate.SourceKey
			}
			if established[i].Bio == "" {
				established[i].Bio = candidate.Bio
			}
			break
		}
	}
}

// unionFold appends the additions not already present in the list,
// comparing case-insensitively and keeping the first casing seen.
func unionFold(list []string, additions []string) []string {
	if len(additions) == 0 {
		return list
	}

	seen := make(map[string]struct{}, len(list))
	for _, entry := range list {
		seen[strings.ToLower(entry)] = struct{}{}
	}

	for _, addition := range additions {
		if addition == "" {
			continue
		}
		folded := strings.ToLower(addition)
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		list = append(list, addition)
	}

	return list
}
