package search

import (
	"sort"
	"strings"

	"github.com/firmdex/firmdex/core"
)

// sortResults orders results in place. All sorts are stable, so equal keys
// keep the upstream (input) order; a relevance sort with uniform scores is
// a pass-through.
func sortResults(results []core.SearchResult, sortBy core.SortKey, order core.SortOrder) {
	asc := order == core.SortAscending

	switch sortBy {
	case core.SortByName:
		sort.SliceStable(results, func(i, j int) bool {
			a := strings.ToLower(results[i].Company.Name)
			b := strings.ToLower(results[j].Company.Name)
			if asc {
				return a < b
			}
			return a > b
		})
	case core.SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			// Zero value already stands in for a missing rating.
			if asc {
				return results[i].Company.Rating < results[j].Company.Rating
			}
			return results[i].Company.Rating > results[j].Company.Rating
		})
	default: // relevance
		sort.SliceStable(results, func(i, j int) bool {
			if asc {
				return results[i].Score < results[j].Score
			}
			return results[i].Score > results[j].Score
		})
	}
}
