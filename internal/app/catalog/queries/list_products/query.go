package list_products

import (
	"context"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// Request contains the page, filter, and sort parameters for a listing.
type Request struct {
	Page     int
	PageSize int
	Filter   domain.Filter
	Sort     domain.SortKey
}

// Result is the stable envelope consumed by presentation, pagination UI, and
// metadata generation.
type Result struct {
	Products    []domain.Product
	TotalCount  int
	TotalPages  int
	CurrentPage int
	HasNext     bool
	HasPrev     bool
}

// Query handles the catalog listing use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new listing query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute runs filter, sort, and page in that fixed order: sorting after
// filtering avoids comparator work on excluded items, and paging must come
// last because it depends on the final total count. A store failure degrades
// to a zero-result envelope instead of an error; listing is a non-critical
// read path.
func (q *Query) Execute(ctx context.Context, req *Request) *Result {
	all, err := q.catalog.Products(ctx)
	if err != nil {
		return &Result{
			Products:    []domain.Product{},
			CurrentPage: req.Page,
		}
	}

	filtered := domain.ApplyFilter(all, req.Filter)
	sorted := domain.ApplySort(filtered, req.Sort)
	page := domain.ApplyPage(sorted, req.Page, req.PageSize)

	return &Result{
		Products:    page.Items,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		HasNext:     page.HasNext,
		HasPrev:     page.HasPrev,
	}
}
