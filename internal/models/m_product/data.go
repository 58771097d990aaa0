package m_product

import (
	"time"
)

// Data represents the database model for the products table. Images holds
// the JSON-encoded image descriptor array as written by the seeding process.
type Data struct {
	ProductID       int64     `spanner:"product_id"`
	Slug            string    `spanner:"slug"`
	Title           string    `spanner:"title"`
	Description     string    `spanner:"description"`
	Brand           string    `spanner:"brand"`
	Category        string    `spanner:"category"`
	PriceKRW        int64     `spanner:"price_krw"`
	DiscountPercent int64     `spanner:"discount_percent"`
	Rating          float64   `spanner:"rating"`
	RatingCount     int64     `spanner:"rating_count"`
	Stock           int64     `spanner:"stock"`
	Images          string    `spanner:"images"`
	CreatedAt       time.Time `spanner:"created_at"`
}
