package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStore_SetAndGet(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	err := store.Set(ctx, "gb:search:dune", []byte(`{"results":[]}`), time.Minute)
	require.NoError(t, err)

	payload, ok, err := store.Get(ctx, "gb:search:dune")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"results":[]}`), payload)
}

func TestCacheStore_Get_Missing(t *testing.T) {
	store := NewCacheStore()

	_, ok, err := store.Get(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStore_Get_Expired(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "stale", []byte("old"), time.Nanosecond))
	time.Sleep(time.Millisecond)

	_, ok, err := store.Get(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, ok)

	// The expired entry is dropped on lookup.
	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries)
	assert.Equal(t, 0, stats.Expired)
}

func TestCacheStore_Set_ReplacesExisting(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("first"), time.Minute))
	require.NoError(t, store.Set(ctx, "key", []byte("second"), time.Minute))

	payload, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), payload)
}

func TestCacheStore_Set_IgnoresNonPositiveTTL(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "zero", []byte("x"), 0))
	require.NoError(t, store.Set(ctx, "negative", []byte("y"), -time.Minute))

	_, ok, err := store.Get(ctx, "zero")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, "negative")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStore_Stats(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "live-1", []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, "live-2", []byte("b"), time.Minute))
	require.NoError(t, store.Set(ctx, "stale", []byte("c"), time.Nanosecond))
	time.Sleep(time.Millisecond)

	// One hit and one miss.
	_, ok, err := store.Get(ctx, "live-1")
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = store.Get(ctx, "absent")
	require.NoError(t, err)
	require.False(t, ok)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestCacheStore_Purge(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key-1", []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, "key-2", []byte("b"), time.Minute))

	require.NoError(t, store.Purge(ctx))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries)
}
