package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID       = "product_id"
	Slug            = "slug"
	Title           = "title"
	Description     = "description"
	Brand           = "brand"
	Category        = "category"
	PriceKRW        = "price_krw"
	DiscountPercent = "discount_percent"
	Rating          = "rating"
	RatingCount     = "rating_count"
	Stock           = "stock"
	Images          = "images"
	CreatedAt       = "created_at"
)

// Columns lists every column of the products table in read order.
var Columns = []string{
	ProductID,
	Slug,
	Title,
	Description,
	Brand,
	Category,
	PriceKRW,
	DiscountPercent,
	Rating,
	RatingCount,
	Stock,
	Images,
	CreatedAt,
}
