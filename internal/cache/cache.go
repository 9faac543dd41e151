package cache

import (
	"crypto/sha256"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 128
	DefaultTTL  = time.Hour
)

// Cache is a bounded in-process cache of completion responses. Entries expire
// after the configured TTL and the least recently used entry is evicted when
// the cache is full. A disabled cache misses on every lookup.
type Cache struct {
	lru     *expirable.LRU[string, string]
	enabled bool
	hits    atomic.Int64
	misses  atomic.Int64
}

// New creates a Cache. Non-positive size or ttl select the defaults.
func New(enabled bool, size int, ttl time.Duration) *Cache {
	if !enabled {
		return &Cache{}
	}
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		lru:     expirable.NewLRU[string, string](size, nil, ttl),
		enabled: true,
	}
}

// Get retrieves a cached response by key. Returns ("", false) on miss.
func (c *Cache) Get(key string) (string, bool) {
	if !c.enabled {
		return "", false
	}
	v, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return v, true
}

// Put stores a response.
func (c *Cache) Put(key, response string) {
	if !c.enabled {
		return
	}
	c.lru.Add(key, response)
}

// Stats describes cache usage.
type Stats struct {
	Enabled bool  `json:"enabled"`
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Stats returns a snapshot of cache usage.
func (c *Cache) Stats() Stats {
	s := Stats{Enabled: c.enabled, Hits: c.hits.Load(), Misses: c.misses.Load()}
	if c.enabled {
		s.Entries = c.lru.Len()
	}
	return s
}

// Enabled returns whether caching is enabled.
func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

// HashKey creates a SHA-256 hash of the given key material.
func HashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", h)
}

// BuildCacheKey creates a cache key from a provider name and request payload.
func BuildCacheKey(provider, payload string) string {
	return HashKey(provider + ":" + payload)
}
