package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
)

// defaultMaxEntries bounds the in-process cache so a long-lived process
// cannot grow it without limit.
const defaultMaxEntries = 1024

type localEntry struct {
	value     []byte
	expiresAt time.Time
}

// LocalCache is a small in-process cache used when Redis is not enabled.
// Expired entries are dropped lazily on access.
type LocalCache struct {
	mu      sync.RWMutex
	entries map[string]localEntry
	max     int
	clock   func() time.Time
}

// NewLocalCache creates an in-process cache.
func NewLocalCache() outbound.CacheRepository {
	return &LocalCache{
		entries: make(map[string]localEntry),
		max:     defaultMaxEntries,
		clock:   time.Now,
	}
}

// Get returns the cached value or ErrCacheMiss.
func (c *LocalCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}
	if c.clock().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

// Set stores a value with the given TTL.
func (c *LocalCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.max {
		c.evictExpiredLocked()
		// Still full after dropping expired entries: drop an arbitrary one.
		if len(c.entries) >= c.max {
			for k := range c.entries {
				delete(c.entries, k)
				break
			}
		}
	}

	c.entries[key] = localEntry{
		value:     append([]byte(nil), value...),
		expiresAt: c.clock().Add(ttl),
	}
	return nil
}

// Delete removes a key.
func (c *LocalCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *LocalCache) evictExpiredLocked() {
	now := c.clock()
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}
}
