package get_product

import (
	"context"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// Query handles single-product lookups by ID or combined slug.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new product lookup query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// ByID retrieves the product with the given ID. An unavailable catalog
// resolves to ErrProductNotFound, consistent with the degrade-to-empty
// policy.
func (q *Query) ByID(ctx context.Context, id int64) (*domain.Product, error) {
	products, err := q.catalog.Products(ctx)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// BySlug resolves a combined "<id>-<slug>" identifier. A slug without a
// numeric prefix is treated as not found, never as a hard failure.
func (q *Query) BySlug(ctx context.Context, combinedSlug string) (*domain.Product, error) {
	id, ok := domain.DecodeID(combinedSlug)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return q.ByID(ctx, id)
}
