package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCacheRoundTrip(t *testing.T) {
	c := NewLocalCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, c.Delete(ctx, "key"))
	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestLocalCacheExpiry(t *testing.T) {
	now := time.Now()
	c := &LocalCache{
		entries: make(map[string]localEntry),
		max:     defaultMaxEntries,
		clock:   func() time.Time { return now },
	}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	_, err := c.Get(ctx, "key")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestLocalCacheCopiesStoredValue(t *testing.T) {
	c := NewLocalCache()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, c.Set(ctx, "key", value, time.Minute))
	value[0] = 'X'

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestLocalCacheBoundedSize(t *testing.T) {
	c := &LocalCache{
		entries: make(map[string]localEntry),
		max:     4,
		clock:   time.Now,
	}
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, c.Set(ctx, key, []byte(key), time.Minute))
	}
	assert.LessOrEqual(t, len(c.entries), 4)
}
