// Package cache provides the thread-safe memo table behind the canonical
// circle stamps.
//
//	c := cache.New[key, *Patch](0) // 0 means unbounded
//	p := c.GetOrCreate(k, func() *Patch { return render(k) })
//
// A positive soft limit turns the table into an approximate LRU: once the
// limit is exceeded the least recently used quarter of the entries is
// evicted.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex). Values are handed out as-is; callers must treat
// them as read-only.
package cache
