package related_products

import (
	"context"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// Query handles the related-products lookup for product detail pages.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new related-products query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute returns up to limit products sharing the category of the product
// identified by id, excluding that product itself, ordered by rating
// descending. An unresolvable id yields an empty sequence.
func (q *Query) Execute(ctx context.Context, id int64, limit int) []domain.Product {
	products, err := q.catalog.Products(ctx)
	if err != nil {
		return []domain.Product{}
	}

	var current *domain.Product
	for i := range products {
		if products[i].ID == id {
			current = &products[i]
			break
		}
	}
	if current == nil {
		return []domain.Product{}
	}

	related := make([]domain.Product, 0)
	for _, p := range products {
		if p.ID != id && p.Category == current.Category {
			related = append(related, p)
		}
	}

	sorted := domain.ApplySort(related, domain.SortRating)
	if limit < 0 {
		limit = 0
	}
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
