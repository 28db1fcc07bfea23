package query

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedQuery is derived fresh from raw text on every call. Empty strings and
// zero PriceMax mean "absent"; Quantity is always at least 1.
type ParsedQuery struct {
	Name     string
	Category string
	PriceMax int
	Quantity int
}

var (
	quantityRe = regexp.MustCompile(`(?i)(\d+)\s?(pack|packs|kg|g|item|piece|pieces)\b`)
	categoryRe = regexp.MustCompile(`(?i)breakfast|lunch|dinner|snack|batter|grains|dairy|powder|spices|vegetables|chutney|ready[- ]?to[- ]?eat`)
	// Category words that stand on their own and are never a product name.
	// "batter" is deliberately absent: "dosa batter" is a product.
	suppressRe    = regexp.MustCompile(`(?i)breakfast|lunch|dinner|snack|vegetables|grains|dairy|spices|powder|chutney|ready`)
	priceMaxRe    = regexp.MustCompile(`(?i)under (\d+)`)
	priceClauseRe = regexp.MustCompile(`(?i)under \d+`)
)

// Parse extracts a product-name fragment, an optional category, an optional
// price ceiling and a quantity from free text. When the text names a known
// category, the category suppresses the name entirely: a result never carries
// both.
func Parse(text string) ParsedQuery {
	q := ParsedQuery{Quantity: 1}

	rest := text
	if loc := quantityRe.FindStringSubmatchIndex(rest); loc != nil {
		if n, err := strconv.Atoi(rest[loc[2]:loc[3]]); err == nil && n >= 1 {
			q.Quantity = n
		}
		rest = rest[:loc[0]] + rest[loc[1]:]
	}

	if m := priceMaxRe.FindStringSubmatch(text); m != nil {
		q.PriceMax, _ = strconv.Atoi(m[1])
	}
	rest = priceClauseRe.ReplaceAllString(rest, " ")
	rest = fillerRe.ReplaceAllString(rest, " ")
	q.Name = tidyName(rest)

	if m := categoryRe.FindString(text); m != "" {
		category := strings.ToLower(m)
		if suppressRe.MatchString(category) {
			q.Category = category
			q.Name = ""
		}
	}

	return q
}

// ParseItem extracts only a product name and quantity, with no category
// handling at all. The cart path uses it: text being added to a cart always
// names a product, so category words like "powder" or "chutney" stay part of
// the name instead of suppressing it.
func ParseItem(text string) ParsedQuery {
	q := ParsedQuery{Quantity: 1}

	rest := text
	if loc := quantityRe.FindStringSubmatchIndex(rest); loc != nil {
		if n, err := strconv.Atoi(rest[loc[2]:loc[3]]); err == nil && n >= 1 {
			q.Quantity = n
		}
		rest = rest[:loc[0]] + rest[loc[1]:]
	}
	rest = fillerRe.ReplaceAllString(rest, " ")
	q.Name = tidyName(rest)
	return q
}

func tidyName(s string) string {
	s = strings.ToLower(s)
	s = leadingJunkRe.ReplaceAllString(s, "")
	s = trailingJunkRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
