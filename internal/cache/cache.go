// Package cache provides a small in-memory TTL cache with a stale window.
package cache

import (
	"sync"
	"time"
)

// State reports how a cached value relates to its TTL.
type State int

const (
	// Miss means no value is cached, or it is past its stale window.
	Miss State = iota
	// Fresh means the value is within its TTL.
	Fresh
	// Stale means the TTL has passed but the value may still be served
	// while a replacement is produced.
	Stale
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "miss"
	}
}

// entry wraps a cached value with its expiry times and insertion order.
type entry[V any] struct {
	value     V
	freshTill time.Time
	staleTill time.Time
	insertIdx int64
}

// Cache holds values for ttl, then serves them as stale for staleTTL more
// before dropping them. Oldest entries are evicted at capacity.
// Thread-safe with sync.RWMutex.
type Cache[V any] struct {
	mu         sync.RWMutex
	items      map[string]entry[V]
	ttl        time.Duration
	staleTTL   time.Duration
	maxEntries int
	nextIdx    int64
	now        func() time.Time
}

// New creates a Cache with the given fresh TTL, stale window and max entry count.
func New[V any](ttl, staleTTL time.Duration, maxEntries int) *Cache[V] {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &Cache[V]{
		items:      make(map[string]entry[V]),
		ttl:        ttl,
		staleTTL:   staleTTL,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (c *Cache[V]) WithClock(now func() time.Time) *Cache[V] {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
	return c
}

// TTL returns the fresh window.
func (c *Cache[V]) TTL() time.Duration { return c.ttl }

// StaleTTL returns the window after TTL during which values are served stale.
func (c *Cache[V]) StaleTTL() time.Duration { return c.staleTTL }

// Get returns the cached value and its state. On Miss the zero value is returned.
func (c *Cache[V]) Get(key string) (V, State) {
	c.mu.RLock()
	e, ok := c.items[key]
	now := c.now()
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, Miss
	}

	switch {
	case now.Before(e.freshTill):
		return e.value, Fresh
	case now.Before(e.staleTill):
		return e.value, Stale
	}

	// Expired: remove lazily
	c.mu.Lock()
	if e2, ok2 := c.items[key]; ok2 && !c.now().Before(e2.staleTill) {
		delete(c.items, key)
	}
	c.mu.Unlock()
	return zero, Miss
}

// Set stores a value. Evicts the oldest entry if at capacity.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e := entry[V]{
		value:     value,
		freshTill: now.Add(c.ttl),
		staleTill: now.Add(c.ttl + c.staleTTL),
		insertIdx: c.nextIdx,
	}
	c.nextIdx++

	// If key already exists, update in place (no capacity change)
	if _, exists := c.items[key]; exists {
		c.items[key] = e
		return
	}

	if len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[key] = e
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (c *Cache[V]) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range c.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
