// ============================================================================
// labzen tool
// ============================================================================
//
// Package:     cache
// Description: Bounded LRU cache with optional TTL for compiled values
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cache

import (
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// entry represents a cached item with expiration
type entry[V any] struct {
	value      V
	expiration time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	if e.expiration.IsZero() {
		return false // never expires
	}
	return now.After(e.expiration)
}

// Cache is a thread-safe in-memory cache bounded by item count.
// When full, the least recently used entry is evicted. Expired entries
// are dropped when read.
type Cache[K comparable, V any] struct {
	items *lru.Cache[K, entry[V]]
	ttl   time.Duration
	now   func() time.Time

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
	TTL      time.Duration // zero keeps entries until evicted
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 256,
	}
}

// New creates a new cache instance
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	// lru.New only fails for a non-positive size
	items, _ := lru.New[K, entry[V]](cfg.MaxItems)
	return &Cache[K, V]{
		items: items,
		ttl:   cfg.TTL,
		now:   time.Now,
	}
}

// Get retrieves a value from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.items.Get(key)
	if ok && e.expired(c.now()) {
		c.items.Remove(key)
		ok = false
	}
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.hits.Add(1)
	return e.value, true
}

// Set stores a value in the cache with the default TTL
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	var exp time.Time
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}
	c.items.Add(key, entry[V]{value: value, expiration: exp})
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.items.Remove(key)
}

// Clear removes all items from the cache
func (c *Cache[K, V]) Clear() {
	c.items.Purge()
}

// Size returns the number of items in the cache, expired ones included
func (c *Cache[K, V]) Size() int {
	return c.items.Len()
}

// Stats returns cache statistics
func (c *Cache[K, V]) Stats() (hits, misses int64, hitRate float64) {
	hits = c.hits.Load()
	misses = c.misses.Load()
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// GetOrSet returns the cached value or computes and stores it.
// A failing fn stores nothing.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(key, val)
	return val, nil
}
