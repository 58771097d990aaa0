// Package testutil provides catalog fixtures shared by unit and integration
// tests.
package testutil

import (
	"context"
	"time"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// BaseTime anchors fixture timestamps so ordering assertions are stable.
var BaseTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// ProductOption mutates a fixture product before it is returned.
type ProductOption func(*domain.Product)

// Product creates a well-formed catalog product. Defaults: category
// Electronics, brand Acme, price 10000 KRW with no discount, rating 4.0 with
// 100 ratings, stock 10, createdAt staggered one hour per id so newest/oldest
// ordering follows the id.
func Product(id int64, opts ...ProductOption) domain.Product {
	p := domain.Product{
		ID:              id,
		Slug:            "fixture-product",
		Title:           "Fixture Product",
		Description:     "A product used in tests",
		PriceKRW:        10000,
		DiscountPercent: 0,
		Category:        "Electronics",
		Brand:           "Acme",
		Rating:          4.0,
		RatingCount:     100,
		Stock:           10,
		Images: []domain.Image{
			{URL: "https://picsum.photos/seed/1/320/320", Width: 320, Height: 320},
		},
		CreatedAt: BaseTime.Add(time.Duration(id) * time.Hour),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithTitle sets the product title.
func WithTitle(title string) ProductOption {
	return func(p *domain.Product) { p.Title = title }
}

// WithSlug sets the product slug.
func WithSlug(slug string) ProductOption {
	return func(p *domain.Product) { p.Slug = slug }
}

// WithCategory sets the product category.
func WithCategory(category string) ProductOption {
	return func(p *domain.Product) { p.Category = category }
}

// WithBrand sets the product brand.
func WithBrand(brand string) ProductOption {
	return func(p *domain.Product) { p.Brand = brand }
}

// WithPrice sets the base price and discount percent.
func WithPrice(priceKRW, discountPercent int64) ProductOption {
	return func(p *domain.Product) {
		p.PriceKRW = priceKRW
		p.DiscountPercent = discountPercent
	}
}

// WithRating sets the rating and rating count.
func WithRating(rating float64, count int64) ProductOption {
	return func(p *domain.Product) {
		p.Rating = rating
		p.RatingCount = count
	}
}

// WithStock sets the stock level.
func WithStock(stock int64) ProductOption {
	return func(p *domain.Product) { p.Stock = stock }
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(t time.Time) ProductOption {
	return func(p *domain.Product) { p.CreatedAt = t }
}

// StaticCatalog is an in-memory contracts.Catalog for query tests.
type StaticCatalog struct {
	Items []domain.Product
	Err   error
}

// Products returns the static items and error.
func (c *StaticCatalog) Products(ctx context.Context) ([]domain.Product, error) {
	return c.Items, c.Err
}

// StaticSource is an in-memory contracts.CatalogSource that counts loads.
type StaticSource struct {
	Items []domain.Product
	Err   error
	Calls int
}

// LoadAll returns the static items and error, recording the call.
func (s *StaticSource) LoadAll(ctx context.Context) ([]domain.Product, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}
