// Package aicache provides the TTL response cache consulted before any AI
// call. Keys must encode every semantically relevant input to the generation
// request so that distinct requests never collide and identical requests
// always hit.
package aicache

import (
	"sync"
	"time"
)

// Cache is a TTL key-value cache. Expiry is checked lazily at read time;
// there is no background sweeper unless the owner calls Sweep.
type Cache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
	now     func() time.Time
}

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// New creates a Cache whose entries expire after ttl.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// WithClock replaces the cache's time source for tests.
func (c *Cache[T]) WithClock(now func() time.Time) *Cache[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get returns the cached value for key. Entries past their TTL are treated
// as absent and evicted on this access.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, replacing any existing entry and restarting
// its TTL.
func (c *Cache[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, storedAt: c.now()}
}

// Delete removes key from the cache.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries, including any not yet evicted expired
// ones.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep evicts every expired entry. Long-lived owners may call this
// periodically to bound memory; correctness never depends on it.
func (c *Cache[T]) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}
