package query

import (
	"regexp"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

// recommendRules pair an item-name pattern with the pattern of its
// complementary product. First matching rule wins; it does not fall through
// to later rules when the catalog holds no complement.
var recommendRules = []struct {
	item   *regexp.Regexp
	target *regexp.Regexp
}{
	{regexp.MustCompile(`(?i)idly|dosa|batter`), regexp.MustCompile(`(?i)chutney`)},
	{regexp.MustCompile(`(?i)bread|cornflakes`), regexp.MustCompile(`(?i)milk`)},
	{regexp.MustCompile(`(?i)rice`), regexp.MustCompile(`(?i)dal|lentil`)},
	{regexp.MustCompile(`(?i)curd|milk|butter|cheese`), regexp.MustCompile(`(?i)bread`)},
	{regexp.MustCompile(`(?i)rasam|sambar|chilli|turmeric`), regexp.MustCompile(`(?i)rice`)},
	{regexp.MustCompile(`(?i)tomato|onion|potato|coriander`), regexp.MustCompile(`(?i)wheat`)},
}

// Recommend proposes at most one complementary product for an item being
// added to a cart. The suggestion is advisory only and is never auto-added.
func Recommend(item entity.Product, snapshot []entity.Product) (entity.Product, bool) {
	for _, rule := range recommendRules {
		if !rule.item.MatchString(item.Name) {
			continue
		}
		for _, p := range snapshot {
			if rule.target.MatchString(p.Name) {
				return p, true
			}
		}
		return entity.Product{}, false
	}
	return entity.Product{}, false
}
