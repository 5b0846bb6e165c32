package cache

import (
	"strings"
	"sync"
	"time"
)

// Item represents a cached value with its expiration
type Item[V any] struct {
	Value      V
	Expiration int64
}

// Cache is an in-memory cache with per-item expiration. Expired items are
// hidden from Get and removed by DeleteExpired.
type Cache[V any] struct {
	items map[string]Item[V]
	mu    sync.RWMutex
	now   func() time.Time
}

// New creates a cache that reads the wall clock
func New[V any]() *Cache[V] {
	return NewWithClock[V](time.Now)
}

// NewWithClock creates a cache that uses now to evaluate expiration
func NewWithClock[V any](now func() time.Time) *Cache[V] {
	return &Cache[V]{
		items: make(map[string]Item[V]),
		now:   now,
	}
}

// Set adds an item to the cache with the given expiration duration
func (c *Cache[V]) Set(key string, value V, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item[V]{
		Value:      value,
		Expiration: c.now().Add(duration).UnixNano(),
	}
}

// Get retrieves an item from the cache
// Returns the item and a boolean indicating if the item was found
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	item, found := c.items[key]
	if !found {
		return zero, false
	}

	if c.now().UnixNano() > item.Expiration {
		return zero, false
	}

	return item.Value, true
}

// DeletePrefix removes every item whose key starts with prefix and returns
// how many were removed
func (c *Cache[V]) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
			removed++
		}
	}
	return removed
}

// DeleteExpired removes all expired items and returns how many were removed
func (c *Cache[V]) DeleteExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UnixNano()
	removed := 0
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
			removed++
		}
	}
	return removed
}
