package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
	"github.com/yourusername/grocery-order-bot/internal/domain/repository"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

// ErrEmptyCart reports a checkout attempt with nothing in the cart. No
// request is made to the data service in that case.
var ErrEmptyCart = errors.New("cart is empty")

type OrderUsecase struct {
	carts  repository.CartRepository
	orders repository.OrderRepository
}

func NewOrderUsecase(carts repository.CartRepository, orders repository.OrderRepository) *OrderUsecase {
	return &OrderUsecase{carts: carts, orders: orders}
}

// Checkout submits the user's cart as an order. The cart is cleared only
// after the service accepts the order, so a failed submission leaves the
// cart intact for retrying.
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64) (entity.Order, error) {
	lines, err := u.carts.Lines(ctx, userID)
	if err != nil {
		return entity.Order{}, err
	}
	if len(lines) == 0 {
		return entity.Order{}, ErrEmptyCart
	}

	order := entity.Order{
		UserID: strconv.FormatInt(userID, 10),
		Items:  lines,
		Total:  entity.CartTotal(lines),
		Status: entity.StatusOrderReceived,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entity.Order{}, err
	}

	if err := u.carts.Clear(ctx, userID); err != nil {
		logger.ErrorLogger.Printf("clear cart after checkout for %d: %v", userID, err)
	}
	return created, nil
}

// Track looks up an order by its number. A nil order means no such order.
func (u *OrderUsecase) Track(ctx context.Context, orderNo string) (*entity.Order, error) {
	return u.orders.ByOrderNo(ctx, orderNo)
}
