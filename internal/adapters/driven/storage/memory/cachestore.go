package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Ensure CacheStore implements the interface.
var _ driven.CacheStore = (*CacheStore)(nil)

type cacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// CacheStore is an in-memory implementation of driven.CacheStore for testing.
// Expired entries count as misses and are dropped on lookup, matching the
// sqlite store's behaviour.
type CacheStore struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	hits    int64
	misses  int64
}

// NewCacheStore creates a new in-memory cache store.
func NewCacheStore() *CacheStore {
	return &CacheStore{
		entries: make(map[string]cacheEntry),
	}
}

// Get retrieves a cached payload by key.
func (s *CacheStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		s.misses++
		return nil, false, nil
	}
	if !time.Now().Before(entry.expiresAt) {
		delete(s.entries, key)
		s.misses++
		return nil, false, nil
	}
	s.hits++
	return entry.payload, true, nil
}

// Set stores a payload under key for the given lifetime. Non-positive
// lifetimes are ignored.
func (s *CacheStore) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = cacheEntry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Stats reports entry counts and lookup counters.
func (s *CacheStore) Stats(_ context.Context) (domain.CacheStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stats := domain.CacheStats{
		Hits:   s.hits,
		Misses: s.misses,
	}
	for _, entry := range s.entries {
		if now.Before(entry.expiresAt) {
			stats.Entries++
		} else {
			stats.Expired++
		}
	}
	return stats, nil
}

// Purge removes all entries.
func (s *CacheStore) Purge(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]cacheEntry)
	return nil
}

// Close releases resources (no-op for memory store).
func (s *CacheStore) Close() error {
	return nil
}
