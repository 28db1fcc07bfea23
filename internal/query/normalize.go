// Package query is the shared query interpretation and recommendation engine.
// Everything in it is a pure function of its inputs: the same rule tables are
// consumed by every front-end, so they live here exactly once.
package query

import (
	"regexp"
	"strings"
)

var (
	fillerRe       = regexp.MustCompile(`(?i)\b(order|of|please|add|buy|for|in)\b`)
	leadingJunkRe  = regexp.MustCompile(`^[^a-zA-Z0-9]+`)
	trailingJunkRe = regexp.MustCompile(`[^a-zA-Z0-9 ]+$`)
	multiSpaceRe   = regexp.MustCompile(`\s{2,}`)
)

// Normalize lowercases free text, removes filler tokens, strips stray leading
// and trailing characters and collapses internal whitespace. ASCII-oriented;
// no locale awareness.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = fillerRe.ReplaceAllString(s, " ")
	s = leadingJunkRe.ReplaceAllString(s, "")
	s = trailingJunkRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
