package index

import "strings"

// Tokenize splits text into lower-cased whitespace-delimited tokens.
// Empty and all-whitespace input yields no tokens.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
