package cache

import (
	"sync"
	"time"
)

// entry holds a cached suggestion with its write timestamp.
type entry struct {
	value   string
	written time.Time
}

// MemoryCache is a thread-safe in-memory suggestion cache with TTL support.
type MemoryCache struct {
	entries map[string]entry
	mu      sync.RWMutex
	ttl     time.Duration
}

// NewMemoryCache creates an in-memory cache with the given TTL. A zero or
// negative TTL means entries never expire.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get retrieves a suggestion, reporting false when absent or expired.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if c.ttl > 0 && time.Since(e.written) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Set stores a suggestion.
func (c *MemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, written: time.Now()}
	return nil
}

// Len returns the number of entries, including expired ones not yet evicted.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Entries returns all non-expired entries as key-value pairs, used for cache
// export.
func (c *MemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.entries))
	now := time.Now()
	for key, e := range c.entries {
		if c.ttl > 0 && now.Sub(e.written) > c.ttl {
			continue
		}
		out[key] = e.value
	}
	return out
}

// Verify MemoryCache implements SuggestionCache
var _ SuggestionCache = (*MemoryCache)(nil)
