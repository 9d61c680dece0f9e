package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bookdex-cli/internal/logger"
)

// DefaultSearchLimit is the result count used when the caller gives none.
const DefaultSearchLimit = 20

// SearchService implements the driving.SearchService interface.
// It fans out to every enabled catalog in parallel, gathers the
// normalised contributions, and hands the combined list to the
// resolution pipeline. One failing catalog degrades the response
// instead of failing it.
type SearchService struct {
	connectors []driven.Connector
	registry   driven.NormaliserRegistry
	merger     *Merger
}

// Interface compliance check.
var _ driving.SearchService = (*SearchService)(nil)

// NewSearchService creates a search service over the given connectors.
// Connectors should be passed in tier order; gathered contributions
// keep that order, which fixes the merge scan order inside each group.
func NewSearchService(
	connectors []driven.Connector,
	registry driven.NormaliserRegistry,
	merger *Merger,
) *SearchService {
	return &SearchService{
		connectors: connectors,
		registry:   registry,
		merger:     merger,
	}
}

// Search fans out the query, resolves identities over the gathered
// records, and returns the ranked canonical books.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Info("Query: %q (subject=%q limit=%d offset=%d)", query, opts.Subject, opts.Limit, opts.Offset)

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search: %w: empty query", domain.ErrInvalidInput)
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultSearchLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if len(s.connectors) == 0 {
		return nil, fmt.Errorf("search: %w", domain.ErrNoSources)
	}

	contributions := make([][]domain.SourceRecord, len(s.connectors))

	var wg sync.WaitGroup
	for i, connector := range s.connectors {
		wg.Add(1)
		go func(i int, connector driven.Connector) {
			defer wg.Done()
			contributions[i] = s.fetchContribution(ctx, connector, query, opts)
		}(i, connector)
	}
	wg.Wait()

	counts := make(map[domain.Provenance]int, len(s.connectors))
	var records []domain.SourceRecord
	for i, connector := range s.connectors {
		counts[connector.Provenance()] = len(contributions[i])
		records = append(records, contributions[i]...)
	}
	logger.Debug("Gathered %d records from %d catalogs", len(records), len(s.connectors))

	books, err := s.merger.MergeAll(records)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Resolved %d records into %d canonical books", len(records), len(books))

	rankBooks(books, query)
	paged := applyPagination(books, opts.Offset, opts.Limit)

	return &domain.SearchResponse{
		Query:        query,
		NumFound:     len(paged),
		SourceCounts: counts,
		Results:      paged,
	}, nil
}

// fetchContribution queries one catalog and normalises its results.
// Upstream failures are absorbed into an empty contribution; a record
// that fails to normalise is skipped, not fatal.
func (s *SearchService) fetchContribution(ctx context.Context, connector driven.Connector, query string, opts domain.SearchOptions) []domain.SourceRecord {
	raws, err := connector.Search(ctx, query, opts)
	if err != nil {
		logger.Warn("Catalog %s search failed: %v", connector.Provenance(), err)
		return nil
	}

	records := make([]domain.SourceRecord, 0, len(raws))
	for _, raw := range raws {
		record, err := s.registry.Normalise(ctx, raw)
		if err != nil {
			logger.Warn("Skipping unparseable %s record: %v", raw.Provenance, err)
			continue
		}
		records = append(records, record)
	}

	logger.Debug("Catalog %s contributed %d records", connector.Provenance(), len(records))
	return records
}

// applyPagination slices the ranked list to the requested page.
func applyPagination(books []domain.Book, offset, limit int) []domain.Book {
	if offset >= len(books) {
		return []domain.Book{}
	}

	end := offset + limit
	if end > len(books) {
		end = len(books)
	}

	return books[offset:end]
}
