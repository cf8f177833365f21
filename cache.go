package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
)

// resultCache keeps enumerated candidates per (band, target) with expiration.
// Results are deterministic, so the TTL only bounds memory.
type resultCache struct {
	mu         sync.RWMutex            // Read-write mutex for concurrent access
	data       map[string]cachedResult // Cache storage keyed by cacheKey
	timeout    time.Duration           // Duration after which an entry is dropped
	maxEntries int                     // Upper bound on stored entries
}

// cachedResult holds the candidate list and the time it was stored
type cachedResult struct {
	results   []keygen.Result
	timestamp time.Time
}

// newResultCache creates an empty cache
func newResultCache(timeout time.Duration, maxEntries int) *resultCache {
	return &resultCache{
		data:       make(map[string]cachedResult),
		timeout:    timeout,
		maxEntries: maxEntries,
	}
}

// cacheKey identifies one enumeration, e.g. "5GHz:1234567"
func cacheKey(band keygen.Band, target uint32) string {
	return fmt.Sprintf("%s:%07d", band, target)
}

// get returns a copy of the cached candidates if present and fresh
func (c *resultCache) get(key string) ([]keygen.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, exists := c.data[key]
	if !exists || time.Since(cached.timestamp) >= c.timeout {
		return nil, false
	}
	// Copy so callers cannot modify the cached slice
	out := make([]keygen.Result, len(cached.results))
	copy(out, cached.results)
	return out, true
}

// set stores candidates, evicting the oldest entry when the cache is full
func (c *resultCache) set(key string, results []keygen.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.data[key]; !exists && c.maxEntries > 0 && len(c.data) >= c.maxEntries {
		c.evictOldestLocked()
	}
	stored := make([]keygen.Result, len(results))
	copy(stored, results)
	c.data[key] = cachedResult{results: stored, timestamp: time.Now()}
}

// evictOldestLocked drops the entry with the oldest timestamp; c.mu must be held
func (c *resultCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, v := range c.data {
		if oldestKey == "" || v.timestamp.Before(oldest) {
			oldestKey, oldest = k, v.timestamp
		}
	}
	delete(c.data, oldestKey)
}

// clear removes a single entry
func (c *resultCache) clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// clearAll removes all cached data (complete cache flush)
func (c *resultCache) clearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]cachedResult)
}

// len reports the number of stored entries, fresh or not
func (c *resultCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
