package cache

import (
	"sync"
	"time"
)

// TTL constants for different data classes
const (
	// Static data - never changes unless hardware swapped
	TTLStatic = 24 * time.Hour

	// Slow-moving - controller topology, enclosure layout
	TTLSlow = 1 * time.Hour

	// Fast - anything derived from mutable device state
	TTLFast = 5 * time.Second
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache provides thread-safe TTL-based caching
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates a new cache instance
func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
	}
}

// Get retrieves a value from cache, returns nil if expired or not found
func (c *Cache) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil
	}
	return e.value
}

// Set stores a value with the given TTL
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// SetStatic stores static data (very long TTL)
func (c *Cache) SetStatic(key string, value interface{}) {
	c.Set(key, value, TTLStatic)
}

// SetSlow stores slow-moving data
func (c *Cache) SetSlow(key string, value interface{}) {
	c.Set(key, value, TTLSlow)
}

// SetFast stores fast-refresh data
func (c *Cache) SetFast(key string, value interface{}) {
	c.Set(key, value, TTLFast)
}

// Delete removes an entry from cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries from cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Global cache instance
var global *Cache
var once sync.Once

// Global returns the global cache instance
func Global() *Cache {
	once.Do(func() {
		global = New()
	})
	return global
}
