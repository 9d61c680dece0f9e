package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
)

// Ensure CacheAdminService implements the interface.
var _ driving.CacheAdmin = (*CacheAdminService)(nil)

// CacheAdminService exposes response cache administration.
type CacheAdminService struct {
	store driven.CacheStore
}

// NewCacheAdminService creates a cache admin service.
// A nil store reports an empty cache and makes purge a no-op.
func NewCacheAdminService(store driven.CacheStore) *CacheAdminService {
	return &CacheAdminService{store: store}
}

// Stats summarises the cache state.
func (s *CacheAdminService) Stats(ctx context.Context) (domain.CacheStats, error) {
	if s.store == nil {
		return domain.CacheStats{}, nil
	}
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return domain.CacheStats{}, fmt.Errorf("cache stats: %w", err)
	}
	return stats, nil
}

// Purge removes every cached response.
func (s *CacheAdminService) Purge(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Purge(ctx); err != nil {
		return fmt.Errorf("cache purge: %w", err)
	}
	return nil
}
