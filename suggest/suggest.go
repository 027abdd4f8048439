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


// Package suggest derives autocomplete terms from the search index.
//
// Candidate terms are index tokens containing the partial input as a
// substring; ranking is fuzzy and deliberately looser than the search
// filters, since autocomplete should surface near-misses.
package suggest

import (
	"errors"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/firmdex/firmdex/index"
)

// ErrIndexRequired is returned when an index is not provided.
var ErrIndexRequired = errors.New("index required")

// Generator produces autocomplete terms for partial input.
type Generator struct {
	index *index.Index
	dims  []index.Dimension
}

// Option configures a Generator.
type Option func(*Generator)

// WithLocations includes location tokens in the candidate set.
// By default only name, service and industry tokens are suggested.
func WithLocations() Option {
	return func(g *Generator) {
		g.dims = append(g.dims, index.DimLocation)
	}
}

// NewGenerator creates a suggestion generator over a built index.
func NewGenerator(ix *index.Index, opts ...Option) (*Generator, error) {
	if ix == nil {
		return nil, ErrIndexRequired
	}

	g := &Generator{
		index: ix,
		dims:  []index.Dimension{index.DimName, index.DimService, index.DimIndustry},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Suggest returns up to limit terms for the partial input, best match
// first. Empty input yields no suggestions. Deterministic for a fixed
// index and input.
func (g *Generator) Suggest(input string, limit int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || limit <= 0 {
		return nil
	}

	candidates := g.collect(input)
	if len(candidates) == 0 {
		return nil
	}

	ranked := fuzzy.Find(input, candidates)
	terms := make([]string, 0, limit)
	for _, m := range ranked {
		terms = append(terms, m.Str)
		if len(terms) == limit {
			break
		}
	}
	return terms
}

// collect gathers deduplicated index tokens containing the input as a
// substring. The result is sorted so ranking sees a stable candidate order.
func (g *Generator) collect(input string) []string {
	seen := make(map[string]bool)
	for _, dim := range g.dims {
		for _, token := range g.index.Tokens(dim) {
			if strings.Contains(token, input) {
				seen[token] = true
			}
		}
	}

	candidates := make([]string, 0, len(seen))
	for token := range seen {
		candidates = append(candidates, token)
	}
	sort.Strings(candidates)
	return candidates
}
