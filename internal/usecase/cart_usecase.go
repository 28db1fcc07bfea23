package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
	"github.com/yourusername/grocery-order-bot/internal/domain/repository"
	"github.com/yourusername/grocery-order-bot/internal/query"
)

// ErrNoMatch reports that no catalog product matched the requested name.
var ErrNoMatch = errors.New("no matching product")

// AddResult is the outcome of adding an item: the line that went into the
// cart and, when a pairing rule fires, a complementary product to suggest.
type AddResult struct {
	Line           entity.CartLine
	Recommendation *entity.Product
}

type CartUsecase struct {
	carts   repository.CartRepository
	catalog *CatalogUsecase
}

func NewCartUsecase(carts repository.CartRepository, catalog *CatalogUsecase) *CartUsecase {
	return &CartUsecase{carts: carts, catalog: catalog}
}

// AddByText interprets free text like "2 packs dosa batter" and adds the
// first matching catalog product to the user's cart. Returns ErrNoMatch when
// nothing in the catalog contains the requested name. Only quantity and
// filler words are stripped here; unlike search, the remaining text is
// always treated as a product name, so "sambar powder" matches the product
// rather than the spices category.
func (u *CartUsecase) AddByText(ctx context.Context, userID int64, text string) (AddResult, error) {
	q := query.ParseItem(query.Normalize(text))
	if q.Name == "" {
		return AddResult{}, ErrNoMatch
	}

	snapshot, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return AddResult{}, err
	}

	var match *entity.Product
	needle := strings.ToLower(q.Name)
	for i := range snapshot {
		if strings.Contains(strings.ToLower(snapshot[i].Name), needle) {
			match = &snapshot[i]
			break
		}
	}
	if match == nil {
		return AddResult{}, ErrNoMatch
	}

	quantity := q.Quantity
	if quantity < 1 {
		quantity = 1
	}
	line := entity.CartLine{
		ProductID: match.ID,
		Name:      match.Name,
		Price:     match.Price,
		Quantity:  quantity,
	}
	if err := u.carts.Add(ctx, userID, line); err != nil {
		return AddResult{}, err
	}

	result := AddResult{Line: line}
	if rec, ok := query.Recommend(*match, snapshot); ok {
		result.Recommendation = &rec
	}
	return result, nil
}

// View returns the cart lines and their total.
func (u *CartUsecase) View(ctx context.Context, userID int64) ([]entity.CartLine, float64, error) {
	lines, err := u.carts.Lines(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return lines, entity.CartTotal(lines), nil
}

// Remove deletes the line at idx, reporting whether anything was removed.
func (u *CartUsecase) Remove(ctx context.Context, userID int64, idx int) (bool, error) {
	return u.carts.Remove(ctx, userID, idx)
}

func (u *CartUsecase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
