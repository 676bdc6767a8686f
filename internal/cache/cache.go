package cache

import (
	"sync"
	"sync/atomic"
)

// Cache is a generic thread-safe memo table with an optional soft limit.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 (or less) means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: max(softLimit, 0),
	}
}

// GetOrCreate returns the cached value for key or creates it.
// create is called under the lock, so concurrent callers asking for the same
// key never compute it twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		c.hits.Add(1)
		return entry.value
	}

	c.misses.Add(1)
	value := create()
	c.store(key, value)
	return value
}

// Clear removes all entries from the cache. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// SetLimit changes the soft limit. Shrinking the limit below the current
// size evicts immediately.
func (c *Cache[K, V]) SetLimit(softLimit int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.softLimit = max(softLimit, 0)
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	n := len(c.entries)
	limit := c.softLimit
	c.mu.Unlock()

	return Stats{
		Len:       n,
		Capacity:  limit,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// store inserts value and applies the soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	c.entries[key] = &cacheEntry[V]{
		value: value,
		atime: c.tick,
	}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entries until the cache holds
// three quarters of the soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	targetSize := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type entry struct {
		key   K
		atime int64
	}
	entries := make([]entry, 0, len(c.entries))
	for key, e := range c.entries {
		entries = append(entries, entry{key: key, atime: e.atime})
	}

	// Selection sort for eviction - good enough for small batches
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			entries[i], entries[minIdx] = entries[minIdx], entries[i]
		}
		delete(c.entries, entries[i].key)
		c.evictions.Add(1)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit; 0 means unbounded.
	Capacity int
	// Hits is the number of lookups answered from the cache.
	Hits uint64
	// Misses is the number of lookups that had to create the value.
	Misses uint64
	// Evictions is the number of entries dropped by the soft limit.
	Evictions uint64
}
