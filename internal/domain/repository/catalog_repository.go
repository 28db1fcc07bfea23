package repository

import (
	"context"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

// ProductFilter narrows a catalog read. Zero values mean "no constraint".
type ProductFilter struct {
	Name     string
	Category string
	PriceMax int
}

// CatalogRepository reads the product catalog from the data service.
type CatalogRepository interface {
	// Products fetches the catalog, optionally filtered server-side.
	Products(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
}

// OrderRepository creates and reads orders on the data service.
type OrderRepository interface {
	// Create submits a new order and returns the created record as echoed
	// back by the service. A service that returns no body yields the input
	// order with OrderNo left zero ("id unknown").
	Create(ctx context.Context, order entity.Order) (entity.Order, error)

	// ByOrderNo returns the order with the given number, or nil when the
	// order does not exist.
	ByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error)
}
