package view

import (
	"sync"
	"sync/atomic"
)

// SubsetCache is a concurrent-safe LRU cache of category filter results.
// It stores record positions, never decluttered coordinates, so cached views
// are still jittered freshly on every computation.
type SubsetCache struct {
	mu         sync.Mutex
	entries    map[string][]int
	order      []string // LRU order: front=oldest, back=newest
	maxEntries int
	hits       atomic.Int64
	misses     atomic.Int64
}

// CacheStats contains cache performance statistics.
type CacheStats struct {
	Entries    int     `json:"entries"`
	MaxEntries int     `json:"max_entries"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
}

// NewSubsetCache creates a cache holding up to maxEntries categories.
// It returns nil when maxEntries <= 0, which disables caching.
func NewSubsetCache(maxEntries int) *SubsetCache {
	if maxEntries <= 0 {
		return nil
	}
	return &SubsetCache{
		entries:    make(map[string][]int),
		maxEntries: maxEntries,
	}
}

// Get returns the cached positions for category.
func (c *SubsetCache) Get(category string) ([]int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.entries[category]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}

	c.removeFromOrder(category)
	c.order = append(c.order, category)
	c.hits.Add(1)
	return idx, true
}

// Put stores positions for category, evicting the least recently used entry
// when full. The slice must not be modified afterwards.
func (c *SubsetCache) Put(category string, idx []int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[category]; ok {
		c.entries[category] = idx
		c.removeFromOrder(category)
		c.order = append(c.order, category)
		return
	}

	for len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[category] = idx
	c.order = append(c.order, category)
}

// Stats returns cache performance statistics.
func (c *SubsetCache) Stats() CacheStats {
	c.mu.Lock()
	entries := len(c.entries)
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{
		Entries:    entries,
		MaxEntries: c.maxEntries,
		Hits:       hits,
		Misses:     misses,
		HitRate:    hitRate,
	}
}

func (c *SubsetCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
