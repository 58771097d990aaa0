package list_slugs

import (
	"context"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
)

// Result is a window of combined product slugs, consumed by sitemap
// generation.
type Result struct {
	Slugs   []string
	HasMore bool
	Total   int
}

// Query lists combined "<id>-<slug>" identifiers in collection order.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new slug inventory query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute returns up to limit combined slugs starting at offset. Out-of-range
// windows yield an empty list.
func (q *Query) Execute(ctx context.Context, offset, limit int) *Result {
	products, err := q.catalog.Products(ctx)
	if err != nil {
		return &Result{Slugs: []string{}}
	}

	total := len(products)
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	start := offset
	if start > total {
		start = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	slugs := make([]string, 0, end-start)
	for _, p := range products[start:end] {
		slugs = append(slugs, p.CombinedSlug())
	}

	return &Result{
		Slugs:   slugs,
		HasMore: offset+limit < total,
		Total:   total,
	}
}
