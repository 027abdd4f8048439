package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/firmdex/firmdex/core"
	"github.com/firmdex/firmdex/index"
	"github.com/firmdex/firmdex/storage"
)

// Default fuzzy thresholds for the filter stages. The ABN threshold is
// tighter because business numbers are a near-exact key.
const (
	defaultServiceThreshold  = 0.7
	defaultIndustryThreshold = 0.7
	defaultLocationThreshold = 0.7
	defaultABNThreshold      = 0.8
)

// Searcher executes directory queries over one index snapshot.
// The index, cache and history recorder are explicit dependencies; there is
// no process-global state, so two Searchers never interfere.
type Searcher struct {
	index   *index.Index
	cache   *resultCache
	history storage.HistoryRepository
	logger  *slog.Logger

	serviceThreshold  float64
	industryThreshold float64
	locationThreshold float64
	abnThreshold      float64
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithHistory records every executed (non-cached) search in the repository.
// Recording failures are logged, never surfaced to the caller.
func WithHistory(history storage.HistoryRepository) Option {
	return func(s *Searcher) error {
		s.history = history
		return nil
	}
}

// WithCacheSize bounds the result cache. Default is 256 entries.
func WithCacheSize(size int) Option {
	return func(s *Searcher) error {
		cache, err := newResultCache(size)
		if err != nil {
			return err
		}
		s.cache = cache
		return nil
	}
}

// NewSearcher creates a searcher over a built index.
func NewSearcher(ix *index.Index, opts ...Option) (*Searcher, error) {
	if ix == nil {
		return nil, ErrIndexRequired
	}

	cache, err := newResultCache(defaultCacheSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		index:             ix,
		cache:             cache,
		logger:            slog.Default(),
		serviceThreshold:  defaultServiceThreshold,
		industryThreshold: defaultIndustryThreshold,
		locationThreshold: defaultLocationThreshold,
		abnThreshold:      defaultABNThreshold,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Index returns the index the searcher was built over.
func (s *Searcher) Index() *index.Index {
	return s.index
}

// PurgeCache drops every cached result set.
func (s *Searcher) PurgeCache() {
	s.cache.purge()
}

// CachedQueries returns the number of result sets currently cached.
func (s *Searcher) CachedQueries() int {
	return s.cache.len()
}

// Search runs the pipeline and returns matching companies in sorted order.
// Absent filter fields impose no constraint; with no filters at all the full
// snapshot is returned in input order.
func (s *Searcher) Search(ctx context.Context, params core.SearchParams) ([]core.Company, error) {
	results, err := s.SearchScored(ctx, params)
	if err != nil {
		return nil, err
	}
	companies := make([]core.Company, len(results))
	for i, r := range results {
		companies[i] = r.Company
	}
	return companies, nil
}

// SearchScored is Search with the accumulated per-company match score
// exposed, so callers can apply their own relevance cutoffs.
func (s *Searcher) SearchScored(ctx context.Context, params core.SearchParams) ([]core.SearchResult, error) {
	return s.SearchScoredWithMonitor(ctx, params, nil)
}

// SearchScoredWithMonitor runs a search with per-stage monitoring hooks.
func (s *Searcher) SearchScoredWithMonitor(ctx context.Context, params core.SearchParams, monitor SearchMonitor) ([]core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	norm := params.Normalize()
	monitor.Start(norm)

	// 1. Cache lookup. The key mixes in the snapshot hash so results built
	// from a previous snapshot can never be replayed against a new one.
	key := s.cacheKey(norm)
	if cached, ok := s.cache.get(key); ok {
		monitor.CacheHit(key)
		return cached, nil
	}
	monitor.CacheMiss(key)

	// 2-3. Free-text token union, or the full snapshot when no query.
	scores := make(map[int]float64)
	positions := s.tokenUnion(norm.Query, scores)
	monitor.AfterTokenLookup(positions)

	// 4. Location filter with office-state alias matching.
	if norm.Location != "" {
		codes := strings.Split(norm.Location, ",")
		positions = s.narrow(positions, scores, func(c core.Company) (float64, bool) {
			return s.matchesLocation(c, codes)
		})
		monitor.AfterLocationFilter(len(positions))
	}

	// 5. Service fuzzy filter.
	if len(norm.Services) > 0 {
		positions = s.narrow(positions, scores, func(c core.Company) (float64, bool) {
			return s.matchesServices(c, norm.Services)
		})
		monitor.AfterServiceFilter(len(positions))
	}

	// 6. Team-size exact filter.
	if len(norm.Sizes) > 0 {
		positions = s.narrow(positions, scores, func(c core.Company) (float64, bool) {
			if matchesSizes(c, norm.Sizes) {
				return 1, true
			}
			return 0, false
		})
		monitor.AfterSizeFilter(len(positions))
	}

	// 7. Industry fuzzy filter.
	if norm.Industry != "" {
		positions = s.narrow(positions, scores, func(c core.Company) (float64, bool) {
			return s.matchesIndustry(c, norm.Industry)
		})
		monitor.AfterIndustryFilter(len(positions))
	}

	// 8. ABN near-exact filter.
	if norm.ABN != "" {
		positions = s.narrow(positions, scores, func(c core.Company) (float64, bool) {
			return s.matchesABN(c, norm.ABN)
		})
		monitor.AfterABNFilter(len(positions))
	}

	// 9. Sort. Positions are in input order here, which is what stable
	// sorting relies on for tie-breaking.
	results := make([]core.SearchResult, len(positions))
	for i, pos := range positions {
		results[i] = core.SearchResult{
			Company: s.index.Company(pos),
			Score:   scores[pos],
		}
	}
	sortResults(results, norm.SortBy, norm.SortOrder)

	// 10. Store and record.
	s.cache.set(key, results)
	s.recordHistory(ctx, norm)

	monitor.Finish(results)
	return results, nil
}

func (s *Searcher) cacheKey(norm core.SearchParams) string {
	return fmt.Sprintf("%016x|%s", uint64(s.index.Hash()), norm.CacheKey())
}

// tokenUnion resolves the free-text query to a working set of snapshot
// positions: OR across tokens over the name and service maps plus the exact
// ABN map. An empty query yields the whole snapshot with zero scores.
func (s *Searcher) tokenUnion(query string, scores map[int]float64) []int {
	if query == "" {
		positions := make([]int, s.index.Len())
		for i := range positions {
			positions[i] = i
		}
		return positions
	}

	seen := make(map[int]bool)
	for _, token := range index.Tokenize(query) {
		for _, pos := range s.index.Positions(index.DimName, token) {
			scores[pos]++
			seen[pos] = true
		}
		for _, pos := range s.index.Positions(index.DimService, token) {
			scores[pos]++
			seen[pos] = true
		}
		if pos, ok := s.index.ABNPosition(token); ok {
			// Exact business-number hits outrank token hits.
			scores[pos] += 2
			seen[pos] = true
		}
	}

	positions := make([]int, 0, len(seen))
	for pos := range seen {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// narrow applies one filter stage, keeping matching positions in order and
// folding each match score into the accumulated relevance score.
func (s *Searcher) narrow(positions []int, scores map[int]float64, matches func(core.Company) (float64, bool)) []int {
	kept := positions[:0]
	for _, pos := range positions {
		score, ok := matches(s.index.Company(pos))
		if !ok {
			continue
		}
		scores[pos] += score
		kept = append(kept, pos)
	}
	return kept
}

func (s *Searcher) recordHistory(ctx context.Context, norm core.SearchParams) {
	if s.history == nil {
		return
	}
	entry := &core.HistoryEntry{
		Params:    norm,
		Timestamp: time.Now().UTC(),
	}
	if err := s.history.SaveSearch(ctx, entry); err != nil {
		s.logger.Error("error recording search history", "err", err)
	}
}
