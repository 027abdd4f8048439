package search

import (
	"strings"

	"github.com/firmdex/firmdex/core"
	"github.com/firmdex/firmdex/match"
)

// regionForms returns the comparable forms of a requested region: its
// canonical short code plus the long name when the alias table knows it.
func regionForms(code string) []string {
	forms := []string{core.CanonicalRegion(code)}
	if name, ok := core.RegionName(code); ok && name != forms[0] {
		forms = append(forms, name)
	}
	return forms
}

// matchesLocation applies the location stage to one company. A company with
// offices matches when any office state resolves to a requested region. A
// company with only a flat location string matches when any requested form
// is contained in or fuzzy-matches that string. Companies with neither are
// excluded while the filter is active.
func (s *Searcher) matchesLocation(c core.Company, codes []string) (float64, bool) {
	if len(c.Offices) > 0 {
		for _, office := range c.Offices {
			for _, code := range codes {
				if core.SameRegion(office.State, code) {
					return 1, true
				}
			}
		}
		return 0, false
	}

	if c.Location == "" {
		return 0, false
	}

	location := strings.ToLower(c.Location)
	best := 0.0
	matched := false
	for _, code := range codes {
		for _, form := range regionForms(code) {
			score := match.Score(form, location)
			if score >= s.locationThreshold && (!matched || score > best) {
				best = score
				matched = true
			}
		}
	}
	return best, matched
}

// matchesServices reports whether any requested service fuzzy-matches any of
// the company's services, returning the best score.
func (s *Searcher) matchesServices(c core.Company, requested []string) (float64, bool) {
	best := 0.0
	matched := false
	for _, want := range requested {
		for _, have := range c.Services {
			score := match.Score(want, have)
			if score >= s.serviceThreshold && (!matched || score > best) {
				best = score
				matched = true
			}
		}
	}
	return best, matched
}

// matchesSizes exact-matches the company's team-size category.
func matchesSizes(c core.Company, requested []string) bool {
	size := strings.ToLower(strings.TrimSpace(c.TeamSize))
	for _, want := range requested {
		if size == want {
			return true
		}
	}
	return false
}

// matchesIndustry fuzzy-matches the company's industry string.
func (s *Searcher) matchesIndustry(c core.Company, industry string) (float64, bool) {
	score := match.Score(industry, c.Industry)
	if score >= s.industryThreshold {
		return score, true
	}
	return 0, false
}

// matchesABN keeps companies whose ABN fuzzy-matches or contains the query
// ABN as a substring. Malformed query ABNs simply fail to match.
func (s *Searcher) matchesABN(c core.Company, abn string) (float64, bool) {
	if c.ABN == "" {
		return 0, false
	}
	if strings.Contains(c.ABN, abn) {
		return 1, true
	}
	score := match.Score(abn, c.ABN)
	if score >= s.abnThreshold {
		return score, true
	}
	return 0, false
}
