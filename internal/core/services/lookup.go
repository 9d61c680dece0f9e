package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bookdex-cli/internal/logger"
)

// maxAuthorBioFetches bounds the per-lookup author page fetches.
const maxAuthorBioFetches = 3

// openLibraryCoverURL is the by-ISBN cover service pattern.
const openLibraryCoverURL = "https://covers.openlibrary.org/b/isbn/%s-%s.jpg"

// LookupService implements the driving.LookupService interface.
// A lookup resolves one identifier across every catalog that supports
// it, merges the contributions under that identifier, and then layers
// on secondary enrichment: work-level details, author biographies,
// and the archival date correction.
type LookupService struct {
	connectors []driven.Connector
	registry   driven.NormaliserRegistry
	merger     *Merger
	discovery  driven.DiscoveryConnector
	discNorm   driven.DiscoveryNormaliser
	control    driven.ControlNumberLookup
}

// Interface compliance check.
var _ driving.LookupService = (*LookupService)(nil)

// NewLookupService creates a lookup service. The discovery pair and the
// control-number lookup are optional; passing nil skips the enrichment
// they would provide.
func NewLookupService(
	connectors []driven.Connector,
	registry driven.NormaliserRegistry,
	merger *Merger,
	discovery driven.DiscoveryConnector,
	discNorm driven.DiscoveryNormaliser,
	control driven.ControlNumberLookup,
) *LookupService {
	return &LookupService{
		connectors: connectors,
		registry:   registry,
		merger:     merger,
		discovery:  discovery,
		discNorm:   discNorm,
		control:    control,
	}
}

// Lookup validates the raw identifier and resolves it to one canonical
// book. ISBN-10 input is converted to ISBN-13 before fetching; numeric
// identifiers outside ISBN shape are treated as control numbers and
// routed to the archival catalog.
func (s *LookupService) Lookup(ctx context.Context, rawIdentifier string) (*domain.Book, error) {
	logger.Section("Book Lookup")

	id, err := domain.ParseIdentifier(rawIdentifier)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}

	if id.Kind == domain.IdentifierControlNumber {
		logger.Info("Resolving control number %s", id.Value)
		return s.lookupControlNumber(ctx, id.Value)
	}

	logger.Info("Resolving ISBN %s", id.Value)
	return s.lookupISBN(ctx, id.Value)
}

// lookupISBN fans the ISBN out to every catalog that supports direct
// lookup and merges whatever comes back under the ISBN itself.
func (s *LookupService) lookupISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	fetchers := make([]driven.Connector, 0, len(s.connectors))
	for _, connector := range s.connectors {
		if connector.Capabilities().SupportsISBNLookup {
			fetchers = append(fetchers, connector)
		}
	}
	if len(fetchers) == 0 {
		return nil, fmt.Errorf("lookup: %w", domain.ErrNoSources)
	}

	contributions := make([]*domain.SourceRecord, len(fetchers))

	var wg sync.WaitGroup
	for i, connector := range fetchers {
		wg.Add(1)
		go func(i int, connector driven.Connector) {
			defer wg.Done()
			contributions[i] = s.fetchRecord(ctx, connector, isbn)
		}(i, connector)
	}
	wg.Wait()

	records := make([]domain.SourceRecord, 0, len(fetchers))
	var archival *domain.SourceRecord
	for _, record := range contributions {
		if record == nil {
			continue
		}
		records = append(records, *record)
		if record.Provenance == domain.ProvenanceLOC {
			archival = record
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("lookup %s: %w", isbn, domain.ErrNotFound)
	}

	// Everything fetched by this ISBN belongs to it, even a record
	// whose payload buried the identifier.
	book, err := s.merger.Merge(isbn, records)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}

	s.enrichFromWork(ctx, &book)
	s.enrichAuthorBios(ctx, &book)
	if archival != nil {
		mergeArchival(&book, *archival)
	}
	fillSyntheticCovers(&book)

	// Supplements may have changed subjects and description, so the
	// classification pass runs once more. Enrichers are idempotent.
	if s.merger.pipeline != nil {
		if err := s.merger.pipeline.Enrich(&book); err != nil {
			return nil, fmt.Errorf("lookup: %w", err)
		}
	}

	return &book, nil
}

// lookupControlNumber resolves an LCCN through the archival catalog.
func (s *LookupService) lookupControlNumber(ctx context.Context, number string) (*domain.Book, error) {
	if s.control == nil {
		return nil, fmt.Errorf("lookup: %w", domain.ErrProviderDisabled)
	}

	raw, err := s.control.FetchByControlNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("lookup %s: %w", number, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup: %w", err)
	}

	record, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}

	book, err := s.merger.Merge(record.IdentityKey(), []domain.SourceRecord{record})
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	fillSyntheticCovers(&book)

	return &book, nil
}

// fetchRecord fetches one catalog's record for the ISBN. A miss or a
// failure is absorbed into a nil contribution.
func (s *LookupService) fetchRecord(ctx context.Context, connector driven.Connector, isbn string) *domain.SourceRecord {
	raw, err := connector.FetchByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Catalog %s has no entry for %s", connector.Provenance(), isbn)
		} else {
			logger.Warn("Catalog %s lookup failed: %v", connector.Provenance(), err)
		}
		return nil
	}

	record, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		logger.Warn("Skipping unparseable %s record: %v", raw.Provenance, err)
		return nil
	}
	return &record
}

// enrichFromWork pulls the work-level record behind the book and fills
// the description gap and the subject set from it.
func (s *LookupService) enrichFromWork(ctx context.Context, book *domain.Book) {
	if s.discovery == nil || s.discNorm == nil || book.WorkKey == "" {
		return
	}

	raw, err := s.discovery.FetchWorkDetails(ctx, book.WorkKey)
	if err != nil {
		logger.Debug("Work details unavailable for %s: %v", book.WorkKey, err)
		return
	}
	details, err := s.discNorm.NormaliseWorkDetails(raw)
	if err != nil {
		logger.Warn("Skipping unparseable work record: %v", err)
		return
	}

	if book.Description == "" {
		book.Description = details.Description
	}
	book.Subjects = unionFold(book.Subjects, details.Subjects)
}

// enrichAuthorBios fills missing biographies for authors that carry a
// catalog key. At most maxAuthorBioFetches author pages are fetched,
// in parallel.
func (s *LookupService) enrichAuthorBios(ctx context.Context, book *domain.Book) {
	if s.discovery == nil || s.discNorm == nil {
		return
	}

	indexes := make([]int, 0, maxAuthorBioFetches)
	for i := range book.Authors {
		if len(indexes) == maxAuthorBioFetches {
			break
		}
		if book.Authors[i].SourceKey != "" && book.Authors[i].Bio == "" {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return
	}

	bios := make([]string, len(indexes))

	var wg sync.WaitGroup
	for slot, idx := range indexes {
		wg.Add(1)
		go func(slot int, key string) {
			defer wg.Done()
			raw, err := s.discovery.FetchAuthor(ctx, key)
			if err != nil {
				logger.Debug("Author page unavailable for %s: %v", key, err)
				return
			}
			profile, err := s.discNorm.NormaliseAuthor(raw)
			if err != nil {
				logger.Warn("Skipping unparseable author record: %v", err)
				return
			}
			bios[slot] = profile.Bio
		}(slot, book.Authors[idx].SourceKey)
	}
	wg.Wait()

	for slot, idx := range indexes {
		if bios[slot] != "" {
			book.Authors[idx].Bio = bios[slot]
		}
	}
}

// mergeArchival applies the archival catalog's corrections after the
// tier merge. The archival date overwrites rather than fills; the
// publisher and subjects follow the normal fill and union rules.
func mergeArchival(book *domain.Book, record domain.SourceRecord) {
	if record.PublishedDate != "" {
		book.PublishedDate = record.PublishedDate
	}
	if book.Publisher == "" {
		book.Publisher = record.Publisher
	}
	book.Subjects = unionFold(book.Subjects, record.Categories)
}

// fillSyntheticCovers fills empty cover slots from the by-ISBN cover
// service and settles the list cover fallback chain.
func fillSyntheticCovers(book *domain.Book) {
	if book.ISBN13 != "" {
		if book.Covers.Small == "" {
			book.Covers.Small = fmt.Sprintf(openLibraryCoverURL, book.ISBN13, "S")
		}
		if book.Covers.Medium == "" {
			book.Covers.Medium = fmt.Sprintf(openLibraryCoverURL, book.ISBN13, "M")
		}
		if book.Covers.Large == "" {
			book.Covers.Large = fmt.Sprintf(openLibraryCoverURL, book.ISBN13, "L")
		}
	}

	if book.CoverURL == "" {
		book.CoverURL = book.Covers.Thumbnail
	}
	if book.CoverURL == "" {
		book.CoverURL = book.Covers.Medium
	}
}
