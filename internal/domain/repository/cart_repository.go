package repository

import (
	"context"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

// CartRepository holds per-user cart state. Implementations evict idle carts
// after a TTL; a cart is single-writer (the session owning it).
type CartRepository interface {
	// Add appends a line, merging quantity into an existing line for the
	// same product.
	Add(ctx context.Context, userID int64, line entity.CartLine) error

	// Lines returns a copy of the user's cart in insertion order.
	Lines(ctx context.Context, userID int64) ([]entity.CartLine, error)

	// Remove deletes the line at idx (0-based). Returns false when idx is
	// out of range.
	Remove(ctx context.Context, userID int64, idx int) (bool, error)

	// Clear drops the user's cart.
	Clear(ctx context.Context, userID int64) error
}
