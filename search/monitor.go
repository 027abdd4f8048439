package search

import "github.com/firmdex/firmdex/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate stages during a search.
type SearchMonitor interface {
	Start(params core.SearchParams)
	CacheHit(key string)
	CacheMiss(key string)
	AfterTokenLookup(positions []int)
	AfterLocationFilter(remaining int)
	AfterServiceFilter(remaining int)
	AfterSizeFilter(remaining int)
	AfterIndustryFilter(remaining int)
	AfterABNFilter(remaining int)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.SearchParams)        {}
func (n *noopMonitor) CacheHit(_ string)                {}
func (n *noopMonitor) CacheMiss(_ string)               {}
func (n *noopMonitor) AfterTokenLookup(_ []int)         {}
func (n *noopMonitor) AfterLocationFilter(_ int)        {}
func (n *noopMonitor) AfterServiceFilter(_ int)         {}
func (n *noopMonitor) AfterSizeFilter(_ int)            {}
func (n *noopMonitor) AfterIndustryFilter(_ int)        {}
func (n *noopMonitor) AfterABNFilter(_ int)             {}
func (n *noopMonitor) Finish(_ []core.SearchResult)     {}
