package core

import (
	"encoding/binary"
	"hash"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// SnapshotHash identifies a specific company snapshot.
// It is a deterministic BLAKE2b digest of every indexed field, so two
// snapshots with identical content produce identical hashes.
type SnapshotHash uint64

// HashCompanies computes the snapshot hash for a company list.
// The hash covers all fields that participate in indexing or filtering,
// in input order, so any change to the snapshot changes the hash.
func HashCompanies(companies []Company) SnapshotHash {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for i := range companies {
		companies[i].writeTo(h)
	}
	sum := h.Sum(nil)
	return SnapshotHash(binary.LittleEndian.Uint64(sum))
}

// Office is a physical company location identified by a state/region code.
type Office struct {
	City  string
	State string
}

// Company is a single directory entry. Companies are supplied wholesale by
// the caller as an immutable snapshot; the search core never mutates them.
type Company struct {
	ID       string
	Name     string
	Location string   // free-text location, optional
	Offices  []Office // offices with state codes, optional
	Industry string   // optional
	Services []string
	ABN      string  // 11-digit Australian Business Number, optional
	TeamSize string  // categorical size bucket, e.g. "1-10"
	Rating   float64 // optional; zero means unrated
}

func (c *Company) writeTo(h hash.Hash) {
	sep := []byte{0}
	write := func(s string) {
		h.Write([]byte(s))
		h.Write(sep)
	}
	write(c.ID)
	write(c.Name)
	write(c.Location)
	for _, o := range c.Offices {
		write(o.City)
		write(o.State)
	}
	write(c.Industry)
	for _, s := range c.Services {
		write(s)
	}
	write(c.ABN)
	write(c.TeamSize)
	write(strconv.FormatFloat(c.Rating, 'g', -1, 64))
}

// SortKey selects the comparator applied to search results.
type SortKey string

const (
	// SortByRelevance orders by accumulated match score, descending by
	// default. Equal scores keep input order (stable).
	SortByRelevance SortKey = "relevance"
	// SortByName orders lexicographically by company name.
	SortByName SortKey = "name"
	// SortByRating orders numerically by rating; unrated companies sort as 0.
	SortByRating SortKey = "rating"
)

// SortOrder selects the direction of a sort.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// SearchParams is the filter specification for a single search.
// The zero value of every field means "unconstrained": an empty query, an
// empty location, nil slices and empty strings impose no filter at all.
type SearchParams struct {
	Query     string   // free-text query, tokenized on whitespace
	Location  string   // comma-separated region codes or names
	Services  []string // at least one must fuzzy-match a company service
	Sizes     []string // exact-match team size categories
	Industry  string   // fuzzy-matched against company industry
	ABN       string   // near-exact business number match
	SortBy    SortKey
	SortOrder SortOrder
}

// Normalize returns a canonical copy of the params: scalar fields are
// lower-cased and trimmed, slice fields are cleaned and sorted, and sort
// defaults (relevance, descending) are filled in. Two params with the same
// meaning normalize to identical values regardless of construction order.
func (p SearchParams) Normalize() SearchParams {
	n := SearchParams{
		Query:     strings.ToLower(strings.TrimSpace(p.Query)),
		Location:  normalizeCSV(p.Location),
		Services:  normalizeList(p.Services),
		Sizes:     normalizeList(p.Sizes),
		Industry:  strings.ToLower(strings.TrimSpace(p.Industry)),
		ABN:       strings.TrimSpace(p.ABN),
		SortBy:    p.SortBy,
		SortOrder: p.SortOrder,
	}
	switch n.SortBy {
	case SortByName, SortByRating:
	default:
		n.SortBy = SortByRelevance
	}
	switch n.SortOrder {
	case SortAscending:
	default:
		n.SortOrder = SortDescending
	}
	return n
}

// IsZero reports whether no filter field is set.
func (p SearchParams) IsZero() bool {
	return p.Query == "" && p.Location == "" && len(p.Services) == 0 &&
		len(p.Sizes) == 0 && p.Industry == "" && p.ABN == ""
}

// CacheKey renders normalized params as a stable string. Callers must
// normalize first; the key is used verbatim for result-cache lookups.
func (p SearchParams) CacheKey() string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(p.Query)
	b.WriteString("|loc=")
	b.WriteString(p.Location)
	b.WriteString("|svc=")
	b.WriteString(strings.Join(p.Services, ","))
	b.WriteString("|size=")
	b.WriteString(strings.Join(p.Sizes, ","))
	b.WriteString("|ind=")
	b.WriteString(p.Industry)
	b.WriteString("|abn=")
	b.WriteString(p.ABN)
	b.WriteString("|sort=")
	b.WriteString(string(p.SortBy))
	b.WriteString(":")
	b.WriteString(string(p.SortOrder))
	return b.String()
}

func normalizeCSV(s string) string {
	parts := normalizeList(strings.Split(s, ","))
	return strings.Join(parts, ",")
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		cleaned := strings.ToLower(strings.TrimSpace(item))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// HistoryEntry is one recorded search, newest entries first when listed.
type HistoryEntry struct {
	Params    SearchParams
	Timestamp time.Time
}

// SearchResult pairs a company with the match score accumulated across the
// search pipeline. Scores are comparable only within a single result set.
type SearchResult struct {
	Company Company
	Score   float64
}
