package catalog_facets

import (
	"context"
	"sort"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// PriceRange is the min/max effective price across the full catalog. Values
// are float64 for display; comparisons inside the engine stay rational.
type PriceRange struct {
	Min float64
	Max float64
}

// Query exposes the auxiliary read views used by the filter bar: category
// and brand lists plus the price range slider bounds.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new facets query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Categories returns the fixed category reference list. It is not derived
// from the loaded data, so categories with zero products still appear.
func (q *Query) Categories() []string {
	out := make([]string, len(domain.Categories))
	copy(out, domain.Categories)
	return out
}

// Brands returns the distinct brand values present in the catalog, in
// ascending lexical order.
func (q *Query) Brands(ctx context.Context) []string {
	products, err := q.catalog.Products(ctx)
	if err != nil {
		return []string{}
	}

	seen := make(map[string]struct{}, len(products))
	brands := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

// EffectivePriceRange returns the min and max effective price across the full
// catalog, or {0, 0} when the catalog is empty.
func (q *Query) EffectivePriceRange(ctx context.Context) PriceRange {
	products, err := q.catalog.Products(ctx)
	if err != nil || len(products) == 0 {
		return PriceRange{}
	}

	min := products[0].EffectivePrice()
	max := min
	for _, p := range products[1:] {
		price := p.EffectivePrice()
		if price.LessThan(min) {
			min = price
		}
		if price.GreaterThan(max) {
			max = price
		}
	}

	return PriceRange{
		Min: min.Float64(),
		Max: max.Float64(),
	}
}
