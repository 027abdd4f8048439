package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdex/firmdex/core"
)

func TestResultCache(t *testing.T) {
	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := newResultCache(0)
		assert.ErrorIs(t, err, ErrInvalidCacheSize)
		_, err = newResultCache(-1)
		assert.ErrorIs(t, err, ErrInvalidCacheSize)
	})

	t.Run("miss then hit", func(t *testing.T) {
		cache, err := newResultCache(4)
		require.NoError(t, err)

		_, ok := cache.get("k")
		assert.False(t, ok)

		cache.set("k", []core.SearchResult{{Company: core.Company{ID: "c1"}, Score: 1}})
		got, ok := cache.get("k")
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "c1", got[0].Company.ID)
	})

	t.Run("stored entries are copies", func(t *testing.T) {
		cache, err := newResultCache(4)
		require.NoError(t, err)

		results := []core.SearchResult{{Company: core.Company{ID: "c1"}}}
		cache.set("k", results)
		results[0].Company.ID = "mutated"

		got, ok := cache.get("k")
		require.True(t, ok)
		assert.Equal(t, "c1", got[0].Company.ID)

		got[0].Company.ID = "also mutated"
		again, ok := cache.get("k")
		require.True(t, ok)
		assert.Equal(t, "c1", again[0].Company.ID)
	})

	t.Run("evicts least recently used beyond bound", func(t *testing.T) {
		cache, err := newResultCache(2)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			cache.set(fmt.Sprintf("k%d", i), nil)
		}
		assert.Equal(t, 2, cache.len())
		_, ok := cache.get("k0")
		assert.False(t, ok)
	})

	t.Run("purge", func(t *testing.T) {
		cache, err := newResultCache(4)
		require.NoError(t, err)
		cache.set("k", nil)
		cache.purge()
		assert.Zero(t, cache.len())
	})
}
