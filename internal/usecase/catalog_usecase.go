package usecase

import (
	"context"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
	"github.com/yourusername/grocery-order-bot/internal/domain/repository"
	"github.com/yourusername/grocery-order-bot/internal/infrastructure/storage"
	"github.com/yourusername/grocery-order-bot/internal/query"
)

// CatalogUsecase serves catalog reads, keeping a short-lived snapshot so
// cart matching and recommendations do not refetch on every message.
type CatalogUsecase struct {
	catalog repository.CatalogRepository
	cache   *storage.SnapshotCache
}

func NewCatalogUsecase(catalog repository.CatalogRepository, cache *storage.SnapshotCache) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog, cache: cache}
}

// Snapshot returns the full catalog, from cache while fresh.
func (u *CatalogUsecase) Snapshot(ctx context.Context) ([]entity.Product, error) {
	if products, fresh := u.cache.Get(); fresh {
		return products, nil
	}
	products, err := u.catalog.Products(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	u.cache.Set(products)
	return products, nil
}

// Refresh drops the cached snapshot and fetches a new one.
func (u *CatalogUsecase) Refresh(ctx context.Context) ([]entity.Product, error) {
	u.cache.Invalidate()
	return u.Snapshot(ctx)
}

// Search interprets free text against the catalog. The parsed criteria are
// pushed to the data service as query filters, then applied again locally so
// results stay correct even when the service ignores a parameter.
// selectedCategory, when set, overrides any category found in the text.
func (u *CatalogUsecase) Search(ctx context.Context, text, selectedCategory string) ([]entity.Product, query.ParsedQuery, error) {
	q := query.Parse(query.Normalize(text))

	filter := repository.ProductFilter{
		Name:     q.Name,
		Category: q.Category,
		PriceMax: q.PriceMax,
	}
	if selectedCategory != "" {
		filter.Category = selectedCategory
	}

	products, err := u.catalog.Products(ctx, filter)
	if err != nil {
		return nil, q, err
	}
	return query.Filter(q, selectedCategory, products), q, nil
}
