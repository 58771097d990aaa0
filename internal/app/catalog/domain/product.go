package domain

import (
	"strconv"
	"time"
)

// Categories is the fixed set of storefront categories. It is a static
// reference list rather than a projection of the loaded data, so it stays
// exhaustive even when a category has zero products in the catalog.
var Categories = []string{
	"Electronics", "Home", "Beauty", "Fashion", "Sports", "Books", "Toys", "Office", "Pet", "Automotive",
	"Garden", "Health", "Baby", "Music", "Games", "Outdoors", "Photo", "Appliances", "DIY", "Food",
}

// Image describes one rendition of a product photo.
type Image struct {
	URL    string
	Width  int
	Height int
}

// Product is an immutable catalog record. Identity is ID; Slug is unique only
// in combination with ID. The catalog is read-only for the process lifetime,
// so products carry no mutators.
type Product struct {
	ID              int64
	Slug            string
	Title           string
	Description     string
	PriceKRW        int64
	DiscountPercent int64
	Category        string
	Brand           string
	Rating          float64
	RatingCount     int64
	Stock           int64
	Images          []Image
	CreatedAt       time.Time
}

// EffectivePrice returns the discounted price, the canonical comparison key
// for all price-based filtering and sorting. It is always derived from
// PriceKRW and DiscountPercent and never cached on the record.
func (p Product) EffectivePrice() *Money {
	return NewMoneyKRW(p.PriceKRW).ApplyDiscountPercent(p.DiscountPercent)
}

// InStock reports whether the product has any units available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CombinedSlug returns the externally visible URL identifier "<id>-<slug>".
func (p Product) CombinedSlug() string {
	return strconv.FormatInt(p.ID, 10) + "-" + p.Slug
}
