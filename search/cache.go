package search

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/firmdex/firmdex/core"
)

// defaultCacheSize bounds the result cache. The LRU bound keeps memory flat
// under many distinct queries without changing hit semantics for repeated
// ones.
const defaultCacheSize = 256

// resultCache memoizes ordered result sets by normalized cache key.
// Entries are copied in and out so cached slices stay immutable even when
// callers reorder or truncate what they get back.
type resultCache struct {
	entries *lru.Cache[string, []core.SearchResult]
}

func newResultCache(size int) (*resultCache, error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}
	entries, err := lru.New[string, []core.SearchResult](size)
	if err != nil {
		return nil, err
	}
	return &resultCache{entries: entries}, nil
}

func (c *resultCache) get(key string) ([]core.SearchResult, bool) {
	cached, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	out := make([]core.SearchResult, len(cached))
	copy(out, cached)
	return out, true
}

func (c *resultCache) set(key string, results []core.SearchResult) {
	stored := make([]core.SearchResult, len(results))
	copy(stored, results)
	c.entries.Add(key, stored)
}

func (c *resultCache) purge() {
	c.entries.Purge()
}

func (c *resultCache) len() int {
	return c.entries.Len()
}
