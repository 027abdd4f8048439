// Copyright 2026 Firmdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index builds the inverted search index over a company snapshot.
//
// An Index is an immutable value tied to one snapshot: it carries the
// snapshot hash, and a changed company list requires a rebuild. Token
// buckets hold snapshot positions in insertion order, which is what keeps
// tie-breaking stable further up the pipeline.
package index

import (
	"sort"
	"sync"

	"github.com/firmdex/firmdex/core"
	"github.com/panjf2000/ants/v2"
)

// Dimension names one of the tokenized index maps.
type Dimension int

const (
	DimName Dimension = iota
	DimLocation
	DimService
	DimIndustry
)

// Index holds inverted token maps over name, location, services and
// industry, plus an exact ABN map. Buckets store positions into the
// snapshot, in input order.
type Index struct {
	companies []core.Company
	hash      core.SnapshotHash

	names      map[string][]int
	locations  map[string][]int
	services   map[string][]int
	industries map[string][]int
	abns       map[string]int
}

// Option configures index construction.
type Option func(*buildOptions)

type buildOptions struct {
	pool *ants.Pool
}

// WithPool builds the per-field token maps concurrently on the given worker
// pool. Each map is owned by a single task, so bucket order is identical to
// a sequential build.
func WithPool(pool *ants.Pool) Option {
	return func(o *buildOptions) {
		o.pool = pool
	}
}

// New builds an index over the snapshot. Pure: the same company list always
// produces equivalent bucket contents. Missing optional fields contribute no
// entries for their dimension.
func New(companies []core.Company, opts ...Option) *Index {
	options := &buildOptions{}
	for _, opt := range opts {
		opt(options)
	}

	ix := &Index{
		companies:  companies,
		hash:       core.HashCompanies(companies),
		names:      make(map[string][]int),
		locations:  make(map[string][]int),
		services:   make(map[string][]int),
		industries: make(map[string][]int),
		abns:       make(map[string]int),
	}

	tasks := []func(){
		ix.buildNames,
		ix.buildLocations,
		ix.buildServices,
		ix.buildIndustries,
		ix.buildABNs,
	}

	if options.pool == nil {
		for _, task := range tasks {
			task()
		}
		return ix
	}

	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		task := task
		if err := options.pool.Submit(func() {
			defer wg.Done()
			task()
		}); err != nil {
			// Pool unavailable; run the task inline.
			task()
			wg.Done()
		}
	}
	wg.Wait()
	return ix
}

func (ix *Index) buildNames() {
	for pos, c := range ix.companies {
		for _, token := range Tokenize(c.Name) {
			ix.names[token] = append(ix.names[token], pos)
		}
	}
}

func (ix *Index) buildLocations() {
	for pos, c := range ix.companies {
		for _, token := range Tokenize(c.Location) {
			ix.locations[token] = append(ix.locations[token], pos)
		}
	}
}

func (ix *Index) buildServices() {
	for pos, c := range ix.companies {
		for _, service := range c.Services {
			for _, token := range Tokenize(service) {
				ix.services[token] = append(ix.services[token], pos)
			}
		}
	}
}

func (ix *Index) buildIndustries() {
	for pos, c := range ix.companies {
		for _, token := range Tokenize(c.Industry) {
			ix.industries[token] = append(ix.industries[token], pos)
		}
	}
}

func (ix *Index) buildABNs() {
	for pos, c := range ix.companies {
		if c.ABN != "" {
			ix.abns[c.ABN] = pos
		}
	}
}

// Hash returns the snapshot hash the index was built from.
func (ix *Index) Hash() core.SnapshotHash {
	return ix.hash
}

// Len returns the number of companies in the snapshot.
func (ix *Index) Len() int {
	return len(ix.companies)
}

// Company returns the company at a snapshot position.
func (ix *Index) Company(pos int) core.Company {
	return ix.companies[pos]
}

// Companies returns the underlying snapshot. Callers must treat it as
// read-only.
func (ix *Index) Companies() []core.Company {
	return ix.companies
}

func (ix *Index) dimension(dim Dimension) map[string][]int {
	switch dim {
	case DimName:
		return ix.names
	case DimLocation:
		return ix.locations
	case DimService:
		return ix.services
	case DimIndustry:
		return ix.industries
	}
	return nil
}

// Positions returns the snapshot positions bucketed under a token for one
// dimension, in input order. Nil when the token is absent.
func (ix *Index) Positions(dim Dimension, token string) []int {
	return ix.dimension(dim)[token]
}

// ABNPosition returns the snapshot position for an exact ABN.
func (ix *Index) ABNPosition(abn string) (int, bool) {
	pos, ok := ix.abns[abn]
	return pos, ok
}

// Tokens returns every token of a dimension in sorted order. Sorting makes
// consumers that scan tokens (suggestions) deterministic.
func (ix *Index) Tokens(dim Dimension) []string {
	m := ix.dimension(dim)
	tokens := make([]string, 0, len(m))
	for token := range m {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
