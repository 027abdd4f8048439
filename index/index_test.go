package index

import (
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdex/firmdex/core"
)

func testCompanies() []core.Company {
	return []core.Company{
		{
			ID:       "c1",
			Name:     "Acme Widgets",
			Location: "Sydney New South Wales",
			Industry: "Manufacturing",
			Services: []string{"Consulting", "Fabrication"},
			ABN:      "51824753556",
		},
		{
			ID:       "c2",
			Name:     "Acme Gadgets",
			Industry: "Manufacturing",
			Services: []string{"Prototyping"},
		},
		{
			ID:       "c3",
			Name:     "Harbour Consulting",
			Industry: "Professional Services",
		},
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"acme", "widgets"}, Tokenize(" Acme  Widgets "))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}

func TestNew(t *testing.T) {
	ix := New(testCompanies())

	t.Run("name buckets keep input order", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, ix.Positions(DimName, "acme"))
		assert.Equal(t, []int{2}, ix.Positions(DimName, "consulting"))
	})

	t.Run("service buckets", func(t *testing.T) {
		assert.Equal(t, []int{0}, ix.Positions(DimService, "consulting"))
		assert.Equal(t, []int{1}, ix.Positions(DimService, "prototyping"))
	})

	t.Run("industry buckets", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, ix.Positions(DimIndustry, "manufacturing"))
		assert.Equal(t, []int{2}, ix.Positions(DimIndustry, "services"))
	})

	t.Run("location buckets", func(t *testing.T) {
		assert.Equal(t, []int{0}, ix.Positions(DimLocation, "sydney"))
		assert.Equal(t, []int{0}, ix.Positions(DimLocation, "wales"))
	})

	t.Run("absent token yields nil", func(t *testing.T) {
		assert.Nil(t, ix.Positions(DimName, "nothing"))
	})

	t.Run("abn map", func(t *testing.T) {
		pos, ok := ix.ABNPosition("51824753556")
		require.True(t, ok)
		assert.Equal(t, 0, pos)

		_, ok = ix.ABNPosition("00000000000")
		assert.False(t, ok)
	})

	t.Run("missing fields contribute nothing", func(t *testing.T) {
		// c2 and c3 carry no location and no ABN.
		total := 0
		for _, token := range ix.Tokens(DimLocation) {
			total += len(ix.Positions(DimLocation, token))
		}
		assert.Equal(t, 4, total)
	})
}

func TestIndexAccessors(t *testing.T) {
	companies := testCompanies()
	ix := New(companies)

	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, "c2", ix.Company(1).ID)
	assert.Equal(t, companies, ix.Companies())
	assert.Equal(t, core.HashCompanies(companies), ix.Hash())
}

func TestTokensSorted(t *testing.T) {
	ix := New(testCompanies())
	tokens := ix.Tokens(DimName)
	assert.Equal(t, []string{"acme", "consulting", "gadgets", "harbour", "widgets"}, tokens)
}

func TestNewWithPool(t *testing.T) {
	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	defer pool.Release()

	sequential := New(testCompanies())
	concurrent := New(testCompanies(), WithPool(pool))

	require.Equal(t, sequential.Hash(), concurrent.Hash())
	for _, dim := range []Dimension{DimName, DimLocation, DimService, DimIndustry} {
		tokens := sequential.Tokens(dim)
		assert.Equal(t, tokens, concurrent.Tokens(dim))
		for _, token := range tokens {
			assert.Equal(t, sequential.Positions(dim, token), concurrent.Positions(dim, token), "dim %d token %q", dim, token)
		}
	}
}

func TestHashChangesWithSnapshot(t *testing.T) {
	a := New(testCompanies())

	companies := testCompanies()
	companies[0].Rating = 4.9
	b := New(companies)

	assert.NotEqual(t, a.Hash(), b.Hash())
}
