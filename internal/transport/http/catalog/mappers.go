package catalog

import (
	"time"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/list_products"
)

// productResponse is the JSON shape for a single product. EffectivePrice is
// a display value; the engine compares prices with exact arithmetic.
type productResponse struct {
	ID              int64           `json:"id"`
	Slug            string          `json:"slug"`
	CombinedSlug    string          `json:"combinedSlug"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	PriceKRW        int64           `json:"priceKRW"`
	DiscountPercent int64           `json:"discountPercent"`
	EffectivePrice  float64         `json:"effectivePrice"`
	Category        string          `json:"category"`
	Brand           string          `json:"brand"`
	Rating          float64         `json:"rating"`
	RatingCount     int64           `json:"ratingCount"`
	Stock           int64           `json:"stock"`
	InStock         bool            `json:"inStock"`
	Images          []imageResponse `json:"images"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type imageResponse struct {
	URL string `json:"url"`
	W   int    `json:"w"`
	H   int    `json:"h"`
}

// listResponse mirrors the stable result envelope that presentation,
// pagination UI, and metadata generation depend on.
type listResponse struct {
	Items       []productResponse `json:"items"`
	TotalCount  int               `json:"totalCount"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	HasNext     bool              `json:"hasNext"`
	HasPrev     bool              `json:"hasPrev"`
}

type priceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type slugsResponse struct {
	Slugs   []string `json:"slugs"`
	HasMore bool     `json:"hasMore"`
	Total   int      `json:"total"`
}

type healthResponse struct {
	Status       string    `json:"status"`
	ProductCount int       `json:"productCount"`
	LoadedAt     time.Time `json:"loadedAt"`
	LoadFailed   bool      `json:"loadFailed"`
}

func toProductResponse(p domain.Product) productResponse {
	images := make([]imageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, imageResponse{URL: img.URL, W: img.Width, H: img.Height})
	}
	return productResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		CombinedSlug:    p.CombinedSlug(),
		Title:           p.Title,
		Description:     p.Description,
		PriceKRW:        p.PriceKRW,
		DiscountPercent: p.DiscountPercent,
		EffectivePrice:  p.EffectivePrice().Float64(),
		Category:        p.Category,
		Brand:           p.Brand,
		Rating:          p.Rating,
		RatingCount:     p.RatingCount,
		Stock:           p.Stock,
		InStock:         p.InStock(),
		Images:          images,
		CreatedAt:       p.CreatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toListResponse(result *list_products.Result) listResponse {
	return listResponse{
		Items:       toProductResponses(result.Products),
		TotalCount:  result.TotalCount,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
		HasNext:     result.HasNext,
		HasPrev:     result.HasPrev,
	}
}
