package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/rbui/rbui/pkg/scoring"
)

// ResultCache is a thread-safe LRU cache of score results for stored
// platforms. Keys embed the record's update time, so an edited record never
// hits a stale entry.
type ResultCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*cacheEntry
	order   []string // oldest first
}

type cacheEntry struct {
	result *scoring.ScoreResult
	runID  string
}

// NewResultCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 256.
func NewResultCache(maxSize int) *ResultCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &ResultCache{
		maxSize: maxSize,
		entries: make(map[string]*cacheEntry),
	}
}

// NewResultCacheFromEnv creates a cache with size from RESULT_CACHE_SIZE.
func NewResultCacheFromEnv() *ResultCache {
	size := 256
	if v := os.Getenv("RESULT_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewResultCache(size)
}

// Get returns the cached result and its run ID, or nil if absent.
func (c *ResultCache) Get(key string) (*scoring.ScoreResult, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ""
	}
	c.moveToEnd(key)
	return entry.result, entry.runID
}

// Put adds a result, evicting the least recently used entry if full.
func (c *ResultCache) Put(key string, result *scoring.ScoreResult, runID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = &cacheEntry{result: result, runID: runID}
		c.moveToEnd(key)
		return
	}

	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = &cacheEntry{result: result, runID: runID}
	c.order = append(c.order, key)
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResultCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}
