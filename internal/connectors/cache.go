package connectors

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// CachePolicy carries the per-operation lifetimes for cached provider
// responses. Discovery fetches (authors, works, editions) share the
// lookup lifetime.
type CachePolicy struct {
	SearchTTL   time.Duration
	LookupTTL   time.Duration
	ReleasesTTL time.Duration
}

// PolicyFromSettings maps the cache settings onto a policy.
func PolicyFromSettings(settings domain.CacheSettings) CachePolicy {
	return CachePolicy{
		SearchTTL:   time.Duration(settings.SearchTTLMinutes) * time.Minute,
		LookupTTL:   time.Duration(settings.LookupTTLMinutes) * time.Minute,
		ReleasesTTL: time.Duration(settings.ReleasesTTLMinutes) * time.Minute,
	}
}

// CacheKey builds a cache key from a provider, an operation, and the
// request parameters.
func CacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// CachedRecords returns the cached record batch for key, if a live
// entry exists. A nil store or any store error reads as a miss.
func CachedRecords(ctx context.Context, store driven.CacheStore, key string) ([]domain.RawRecord, bool) {
	if store == nil {
		return nil, false
	}

	payload, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}

	var records []domain.RawRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, false
	}
	return records, true
}

// StoreRecords caches a record batch under key. Failures are dropped:
// a broken cache never fails the fetch that filled it.
func StoreRecords(ctx context.Context, store driven.CacheStore, key string, records []domain.RawRecord, ttl time.Duration) {
	if store == nil || ttl <= 0 {
		return
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return
	}
	_ = store.Set(ctx, key, payload, ttl)
}

// CachedRecord returns the cached single record for key, if a live
// entry exists. Used by the lookup and discovery paths.
func CachedRecord(ctx context.Context, store driven.CacheStore, key string) (domain.RawRecord, bool) {
	if store == nil {
		return domain.RawRecord{}, false
	}

	payload, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return domain.RawRecord{}, false
	}

	var record domain.RawRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.RawRecord{}, false
	}
	return record, true
}

// StoreRecord caches a single record under key.
func StoreRecord(ctx context.Context, store driven.CacheStore, key string, record domain.RawRecord, ttl time.Duration) {
	if store == nil || ttl <= 0 {
		return
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	_ = store.Set(ctx, key, payload, ttl)
}
