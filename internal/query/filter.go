package query

import (
	"strings"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

// Filter applies a parsed query to a catalog snapshot. An explicitly selected
// category takes precedence over the parsed one. With no criteria at all the
// snapshot is returned unchanged: the default is "browse all". An empty
// result is a "no results" signal for the caller, never an error.
func Filter(q ParsedQuery, selectedCategory string, snapshot []entity.Product) []entity.Product {
	category := strings.ToLower(strings.TrimSpace(selectedCategory))
	if category == "" {
		category = q.Category
	}

	if q.Name == "" && category == "" && q.PriceMax == 0 {
		return snapshot
	}

	out := make([]entity.Product, 0, len(snapshot))
	for _, p := range snapshot {
		if q.Name != "" && !strings.Contains(strings.ToLower(p.Name), q.Name) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if q.PriceMax > 0 && p.Price > float64(q.PriceMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}
