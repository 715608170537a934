// Package cache provides the small TTL caches shared across the reporting
// services: the process-wide office roster, the per-office hierarchy lists
// and the field-mapping registry. Entries past their TTL stop being served
// by Get but stay readable through GetStale, so a failed refresh can fall
// back to the last good data.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL bounds staleness of the office caches.
const DefaultTTL = 30 * time.Minute

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a mutex-guarded key/value store with a fixed TTL.
// A zero TTL means entries never expire (manual invalidation only).
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[K]entry[V]
}

func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:     ttl,
		entries: make(map[K]entry[V]),
	}
}

// Get returns the value for key if it exists and is still within TTL.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.isValid(e, time.Now()) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetStale returns the value for key regardless of TTL. Used when a refresh
// failed and expired data is still better than nothing.
func (c *Cache[K, V]) GetStale(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: time.Now()}
}

func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]entry[V])
}

func (c *Cache[K, V]) isValid(e entry[V], now time.Time) bool {
	if c.ttl <= 0 {
		return true
	}
	return now.Sub(e.storedAt) < c.ttl
}
