package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bookdex-cli/internal/logger"
)

// authorBibliographyLimit is the bibliography size on author pages.
const authorBibliographyLimit = 20

// generatedProfileBio marks profiles assembled from search results
// rather than a catalogued author entity.
const generatedProfileBio = "Author profile generated from commercial catalog data."

// DiscoveryService implements the driving.DiscoveryService interface.
// It serves author pages in two modes (catalogued entity for Open
// Library keys, generated profile for plain names) and work edition
// listings.
type DiscoveryService struct {
	discovery driven.DiscoveryConnector
	discNorm  driven.DiscoveryNormaliser
	fallback  driven.Connector
	registry  driven.NormaliserRegistry
	merger    *Merger
}

// Interface compliance check.
var _ driving.DiscoveryService = (*DiscoveryService)(nil)

// NewDiscoveryService creates a discovery service. The fallback
// connector handles name-based author profiles; nil restricts author
// pages to catalogued keys.
func NewDiscoveryService(
	discovery driven.DiscoveryConnector,
	discNorm driven.DiscoveryNormaliser,
	fallback driven.Connector,
	registry driven.NormaliserRegistry,
	merger *Merger,
) *DiscoveryService {
	return &DiscoveryService{
		discovery: discovery,
		discNorm:  discNorm,
		fallback:  fallback,
		registry:  registry,
		merger:    merger,
	}
}

// AuthorProfile builds an author page for a catalog key or a name.
func (s *DiscoveryService) AuthorProfile(ctx context.Context, id string) (*domain.AuthorProfile, error) {
	logger.Section("Author Profile")

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("author: %w: empty id", domain.ErrInvalidInput)
	}

	if domain.IsAuthorKey(id) {
		logger.Info("Catalogued author %s", id)
		return s.authorByKey(ctx, id)
	}

	logger.Info("Generated profile for %q", id)
	return s.authorByName(ctx, id)
}

// WorkEditions lists the catalogued editions for a work key.
func (s *DiscoveryService) WorkEditions(ctx context.Context, workKey string) (*domain.WorkEditions, error) {
	logger.Section("Work Editions")

	if !domain.IsWorkKey(workKey) {
		return nil, fmt.Errorf("work %q: %w", workKey, domain.ErrInvalidWorkKey)
	}
	if s.discovery == nil || s.discNorm == nil {
		return nil, fmt.Errorf("work: %w", domain.ErrProviderDisabled)
	}

	raw, err := s.discovery.FetchWorkEditions(ctx, workKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("work %s: %w", workKey, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("work: %w", err)
	}

	editions, err := s.discNorm.NormaliseWorkEditions(raw)
	if err != nil {
		return nil, fmt.Errorf("work: %w", err)
	}
	logger.Debug("Work %s: %d of %d editions fetched", workKey, len(editions.Entries), editions.Size)

	return &editions, nil
}

// authorByKey serves the catalogued profile plus bibliography.
func (s *DiscoveryService) authorByKey(ctx context.Context, key string) (*domain.AuthorProfile, error) {
	if s.discovery == nil || s.discNorm == nil {
		return nil, fmt.Errorf("author: %w", domain.ErrProviderDisabled)
	}

	raw, err := s.discovery.FetchAuthor(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("author %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("author: %w", err)
	}

	profile, err := s.discNorm.NormaliseAuthor(raw)
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}

	// Bibliography failures degrade the page, they do not fail it.
	raws, err := s.discovery.SearchByAuthorKey(ctx, key, authorBibliographyLimit)
	if err != nil {
		logger.Warn("Bibliography unavailable for %s: %v", key, err)
	} else {
		profile.Books, err = s.resolveBibliography(ctx, raws)
		if err != nil {
			return nil, fmt.Errorf("author: %w", err)
		}
	}

	return &profile, nil
}

// authorByName serves a profile generated from the fallback catalog's
// search results for the name.
func (s *DiscoveryService) authorByName(ctx context.Context, name string) (*domain.AuthorProfile, error) {
	if s.fallback == nil {
		return nil, fmt.Errorf("author: %w", domain.ErrProviderDisabled)
	}

	cleanName := strings.TrimSpace(strings.ReplaceAll(name, `"`, ""))
	query := fmt.Sprintf(`inauthor:"%s"`, cleanName)

	raws, err := s.fallback.Search(ctx, query, domain.SearchOptions{Limit: authorBibliographyLimit})
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("author %q: %w", name, domain.ErrNotFound)
	}

	books, err := s.resolveBibliography(ctx, raws)
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("author %q: %w", name, domain.ErrNotFound)
	}

	// The first result's primary author is the canonical display name.
	displayName := cleanName
	if first := books[0].FirstAuthor(); first != "" {
		displayName = first
	}

	return &domain.AuthorProfile{
		Key:    name,
		Name:   displayName,
		Bio:    generatedProfileBio,
		Books:  books,
		Source: s.fallback.Provenance(),
	}, nil
}

// resolveBibliography normalises and merges raw search hits into the
// canonical books shown on an author page.
func (s *DiscoveryService) resolveBibliography(ctx context.Context, raws []domain.RawRecord) ([]domain.Book, error) {
	records := make([]domain.SourceRecord, 0, len(raws))
	for _, raw := range raws {
		record, err := s.registry.Normalise(ctx, raw)
		if err != nil {
			logger.Warn("Skipping unparseable %s record: %v", raw.Provenance, err)
			continue
		}
		records = append(records, record)
	}

	return s.merger.MergeAll(records)
}
