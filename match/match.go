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


// Package match provides the string-similarity primitive used by every
// search filter. Scores are normalized edit distance in [0, 1]; substring
// containment short-circuits to a near-perfect score.
package match

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// containmentScore is returned when one normalized string contains the
// other. It is deliberately below 1.0 so exact equality still ranks first.
const containmentScore = 0.95

// Score returns the similarity of two strings in [0, 1].
// Both inputs are lower-cased and trimmed before comparison. Identical
// strings score 1, containment scores just under 1, and everything else is
// 1 - editDistance/maxLen floored at 0. Pure and deterministic.
func Score(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return containmentScore
	}

	dist := smetrics.WagnerFischer(a, b, 1, 1, 1)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	score := 1 - float64(dist)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// Match reports whether the similarity of a and b reaches threshold.
func Match(a, b string, threshold float64) bool {
	return Score(a, b) >= threshold
}

// Scored is a candidate together with its similarity to a query.
type Scored struct {
	Value string
	Score float64
}

// RankScored scores every candidate against the query and returns those at
// or above threshold, ordered by descending score. Candidates with equal
// scores keep their input order.
func RankScored(query string, candidates []string, threshold float64) []Scored {
	ranked := make([]Scored, 0, len(candidates))
	for _, candidate := range candidates {
		score := Score(query, candidate)
		if score >= threshold {
			ranked = append(ranked, Scored{Value: candidate, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Rank is RankScored without the scores; callers truncate to a limit.
func Rank(query string, candidates []string, threshold float64) []string {
	ranked := RankScored(query, candidates, threshold)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Value
	}
	return out
}
