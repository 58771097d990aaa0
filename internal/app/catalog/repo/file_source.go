package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// FileSource loads the catalog from a JSON array on disk, the dataset
// produced by cmd/seed. This is the default source.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource reading from the given path.
func NewFileSource(path string) contracts.CatalogSource {
	return &FileSource{
		path: path,
	}
}

// LoadAll reads and parses the whole dataset. Either the full parsed
// collection is returned or an error; no partial state.
func (s *FileSource) LoadAll(ctx context.Context) ([]domain.Product, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var records []productRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.toDomain())
	}
	return products, nil
}

// productRecord mirrors the JSON shape written by the seeding process.
type productRecord struct {
	ID              int64         `json:"id"`
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	PriceKRW        int64         `json:"priceKRW"`
	DiscountPercent int64         `json:"discountPercent"`
	Category        string        `json:"category"`
	Brand           string        `json:"brand"`
	Rating          float64       `json:"rating"`
	RatingCount     int64         `json:"ratingCount"`
	Stock           int64         `json:"stock"`
	Images          []imageRecord `json:"images"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type imageRecord struct {
	URL string `json:"url"`
	W   int    `json:"w"`
	H   int    `json:"h"`
}

func (r productRecord) toDomain() domain.Product {
	images := make([]domain.Image, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, domain.Image{URL: img.URL, Width: img.W, Height: img.H})
	}
	return domain.Product{
		ID:              r.ID,
		Slug:            r.Slug,
		Title:           r.Title,
		Description:     r.Description,
		PriceKRW:        r.PriceKRW,
		DiscountPercent: r.DiscountPercent,
		Category:        r.Category,
		Brand:           r.Brand,
		Rating:          r.Rating,
		RatingCount:     r.RatingCount,
		Stock:           r.Stock,
		Images:          images,
		CreatedAt:       r.CreatedAt,
	}
}

func decodeImages(raw string) ([]domain.Image, error) {
	if raw == "" {
		return nil, nil
	}
	var records []imageRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("parse image descriptors: %w", err)
	}
	images := make([]domain.Image, 0, len(records))
	for _, img := range records {
		images = append(images, domain.Image{URL: img.URL, Width: img.W, Height: img.H})
	}
	return images, nil
}
