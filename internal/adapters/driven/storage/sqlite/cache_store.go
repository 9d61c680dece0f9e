package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// cacheStore implements driven.CacheStore.
type cacheStore struct {
	store *Store
}

var _ driven.CacheStore = (*cacheStore)(nil)

// Get returns the cached payload for key. Expired entries count as
// misses and are dropped on the way out.
func (c *cacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT payload, expires_at FROM cache_entries WHERE key = ?
	`, key)

	var payload []byte
	var expiresAt int64
	if err := row.Scan(&payload, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			c.store.misses.Add(1)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("querying cache entry: %w", err)
	}

	if time.Now().UnixNano() >= expiresAt {
		c.store.misses.Add(1)
		_, _ = c.store.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key)
		return nil, false, nil
	}

	c.store.hits.Add(1)
	return payload, true, nil
}

// Set stores a payload under key, replacing any previous entry.
// Non-positive lifetimes are ignored.
func (c *cacheStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	now := time.Now().UTC()
	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, payload, expires_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			expires_at = excluded.expires_at,
			created_at = excluded.created_at
	`, key, payload, now.Add(ttl).UnixNano(), now.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

// Stats summarises entries and hit/miss counts.
func (c *cacheStore) Stats(ctx context.Context) (domain.CacheStats, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN expires_at > ? THEN 1 ELSE 0 END), 0)
		FROM cache_entries
	`, time.Now().UnixNano())

	var total, live int
	if err := row.Scan(&total, &live); err != nil {
		return domain.CacheStats{}, fmt.Errorf("counting cache entries: %w", err)
	}

	return domain.CacheStats{
		Entries: live,
		Expired: total - live,
		Hits:    c.store.hits.Load(),
		Misses:  c.store.misses.Load(),
	}, nil
}

// Purge removes every entry, live or expired.
func (c *cacheStore) Purge(ctx context.Context) error {
	if _, err := c.store.db.ExecContext(ctx, "DELETE FROM cache_entries"); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (c *cacheStore) Close() error {
	return c.store.Close()
}
