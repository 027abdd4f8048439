package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("fills sort defaults", func(t *testing.T) {
		n := SearchParams{}.Normalize()
		assert.Equal(t, SortByRelevance, n.SortBy)
		assert.Equal(t, SortDescending, n.SortOrder)
	})

	t.Run("keeps explicit sort", func(t *testing.T) {
		n := SearchParams{SortBy: SortByRating, SortOrder: SortAscending}.Normalize()
		assert.Equal(t, SortByRating, n.SortBy)
		assert.Equal(t, SortAscending, n.SortOrder)
	})

	t.Run("unknown sort key degrades to relevance", func(t *testing.T) {
		n := SearchParams{SortBy: SortKey("bogus")}.Normalize()
		assert.Equal(t, SortByRelevance, n.SortBy)
	})

	t.Run("lower-cases and trims scalars", func(t *testing.T) {
		n := SearchParams{Query: "  Acme ", Industry: " Manufacturing", Location: "NSW, vic "}.Normalize()
		assert.Equal(t, "acme", n.Query)
		assert.Equal(t, "manufacturing", n.Industry)
		assert.Equal(t, "nsw,vic", n.Location)
	})

	t.Run("sorts and cleans slices", func(t *testing.T) {
		n := SearchParams{Services: []string{" Web ", "", "Advisory"}}.Normalize()
		assert.Equal(t, []string{"advisory", "web"}, n.Services)
	})
}

func TestCacheKey(t *testing.T) {
	t.Run("construction order does not matter", func(t *testing.T) {
		a := SearchParams{Services: []string{"web", "advisory"}, Location: "vic,nsw"}.Normalize()
		b := SearchParams{Services: []string{"Advisory", "Web"}, Location: "NSW,VIC"}.Normalize()
		assert.Equal(t, a.CacheKey(), b.CacheKey())
	})

	t.Run("different params different keys", func(t *testing.T) {
		a := SearchParams{Query: "acme"}.Normalize()
		b := SearchParams{Query: "other"}.Normalize()
		assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	})
}

func TestIsZero(t *testing.T) {
	assert.True(t, SearchParams{}.IsZero())
	assert.True(t, SearchParams{SortBy: SortByName}.IsZero())
	assert.False(t, SearchParams{Query: "x"}.IsZero())
	assert.False(t, SearchParams{Sizes: []string{"1-10"}}.IsZero())
}

func TestHashCompanies(t *testing.T) {
	companies := []Company{
		{ID: "c1", Name: "Acme Widgets", Services: []string{"Consulting"}},
		{ID: "c2", Name: "Other Co", ABN: "51824753556"},
	}

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, HashCompanies(companies), HashCompanies(companies))
	})

	t.Run("sensitive to content", func(t *testing.T) {
		changed := []Company{companies[0], {ID: "c2", Name: "Other Co", ABN: "51824753557"}}
		assert.NotEqual(t, HashCompanies(companies), HashCompanies(changed))
	})

	t.Run("sensitive to order", func(t *testing.T) {
		swapped := []Company{companies[1], companies[0]}
		assert.NotEqual(t, HashCompanies(companies), HashCompanies(swapped))
	})
}
