package core

import "strings"

// regionNames maps short region codes to their long names. The table is
// bidirectional through CanonicalRegion and RegionName; keep all entries
// lower-case.
var regionNames = map[string]string{
	"nsw": "new south wales",
	"vic": "victoria",
	"qld": "queensland",
	"wa":  "western australia",
	"sa":  "south australia",
	"tas": "tasmania",
	"act": "australian capital territory",
	"nt":  "northern territory",
}

var regionCodes = func() map[string]string {
	m := make(map[string]string, len(regionNames))
	for code, name := range regionNames {
		m[name] = code
	}
	return m
}()

// CanonicalRegion resolves a region code or long name to its short code.
// Unrecognized input is returned lower-cased and trimmed, so comparisons on
// canonical forms still work for regions outside the table.
func CanonicalRegion(s string) string {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if code, ok := regionCodes[cleaned]; ok {
		return code
	}
	return cleaned
}

// RegionName returns the long name for a region code or name.
// The second return is false when the region is not in the alias table.
func RegionName(s string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if name, ok := regionNames[cleaned]; ok {
		return name, true
	}
	if _, ok := regionCodes[cleaned]; ok {
		return cleaned, true
	}
	return "", false
}

// SameRegion reports whether two region strings refer to the same region,
// treating short codes and long names as equivalent.
func SameRegion(a, b string) bool {
	ca, cb := CanonicalRegion(a), CanonicalRegion(b)
	return ca != "" && ca == cb
}
