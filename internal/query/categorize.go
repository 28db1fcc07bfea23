package query

import (
	"regexp"
	"strings"
)

// CategoryOther is returned when no categorization rule matches.
const CategoryOther = "Other"

// categoryRules are evaluated in order; the first match wins, so earlier
// rules take precedence on overlapping keywords. The mixed label casing is
// part of the contract.
var categoryRules = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`idly|dosa|uttapam|pongal|vada`), "batter"},
	{regexp.MustCompile(`powder|masala|spice|spices|rasam|sambar`), "spices"},
	{regexp.MustCompile(`chutney|sauce|dip`), "Condiments"},
	{regexp.MustCompile(`rice|dal|lentil|grain`), "Staples"},
	{regexp.MustCompile(`snack|chips|namkeen`), "Snacks"},
}

// Categorize maps a bare product name to exactly one category label.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		if rule.re.MatchString(lower) {
			return rule.label
		}
	}
	return CategoryOther
}
