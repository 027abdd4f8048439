package firmdex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdex/firmdex/core"
	"github.com/firmdex/firmdex/storage/badger"
)

func directoryCompanies() []core.Company {
	return []core.Company{
		{
			ID:       "c1",
			Name:     "Acme Widgets",
			Offices:  []core.Office{{City: "Sydney", State: "NSW"}},
			Industry: "Manufacturing",
			Services: []string{"Consulting"},
			ABN:      "51824753556",
			TeamSize: "11-50",
			Rating:   3,
		},
		{
			ID:       "c2",
			Name:     "Harbour Consulting",
			Offices:  []core.Office{{State: "VIC"}},
			Industry: "Professional Services",
			Services: []string{"Consulting", "Advisory"},
			TeamSize: "1-10",
			Rating:   4.5,
		},
	}
}

func newTestDirectory(t *testing.T, opts ...DirectoryOption) *Directory {
	t.Helper()
	dir, err := NewDirectory(directoryCompanies(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { dir.Close() })
	return dir
}

func TestDirectorySearch(t *testing.T) {
	dir := newTestDirectory(t)

	companies, err := dir.Search(context.Background(), core.SearchParams{Query: "acme"})
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "c1", companies[0].ID)
}

func TestDirectorySearchScored(t *testing.T) {
	dir := newTestDirectory(t)

	results, err := dir.SearchScored(context.Background(), core.SearchParams{Query: "consulting"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	// c2 hits on name and service, c1 on service only.
	assert.Equal(t, "c2", results[0].Company.ID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestDirectorySuggest(t *testing.T) {
	dir := newTestDirectory(t)

	assert.Equal(t, []string{"consulting"}, dir.Suggest("consul", 5))
	assert.Empty(t, dir.Suggest("zzz", 5))
}

func TestDirectorySnapshotSwap(t *testing.T) {
	dir := newTestDirectory(t)
	ctx := context.Background()

	before := dir.Snapshot()

	// Warm the cache for a query whose answer is about to change.
	companies, err := dir.Search(ctx, core.SearchParams{Query: "acme"})
	require.NoError(t, err)
	require.Len(t, companies, 1)

	next := directoryCompanies()
	next = append(next, core.Company{ID: "c3", Name: "Acme Labs"})
	require.NoError(t, dir.SetCompanies(next))

	assert.NotEqual(t, before, dir.Snapshot())
	assert.Len(t, dir.Companies(), 3)

	// The swapped snapshot answers fresh, not from the old cache.
	companies, err = dir.Search(ctx, core.SearchParams{Query: "acme"})
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "c1", companies[0].ID)
	assert.Equal(t, "c3", companies[1].ID)
}

func TestDirectoryHistory(t *testing.T) {
	history, backend, err := badger.NewMemoryHistory()
	require.NoError(t, err)
	defer backend.Close()
	defer history.Close()

	dir := newTestDirectory(t, WithHistory(history))
	ctx := context.Background()

	_, err = dir.Search(ctx, core.SearchParams{Query: "acme"})
	require.NoError(t, err)

	entries, err := dir.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "acme", entries[0].Params.Query)

	require.NoError(t, dir.ClearHistory(ctx))
	entries, err = dir.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDirectoryWithoutHistory(t *testing.T) {
	dir := newTestDirectory(t)
	ctx := context.Background()

	entries, err := dir.History(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, entries)
	assert.NoError(t, dir.ClearHistory(ctx))
}

func TestDirectoryOwnedHistory(t *testing.T) {
	path := t.TempDir()

	dir, err := NewDirectory(directoryCompanies(),
		WithHistoryPath(path),
		WithHistoryCapacity(10),
	)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = dir.Search(ctx, core.SearchParams{Industry: "manufacturing"})
	require.NoError(t, err)

	entries, err := dir.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "manufacturing", entries[0].Params.Industry)

	require.NoError(t, dir.Close())
}
