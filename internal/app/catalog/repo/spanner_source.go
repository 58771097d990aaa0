package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-browse-service/internal/models/m_product"
)

// SpannerSource bulk-reads the catalog from a Spanner products table. The
// table is a static dataset; the source performs exactly one full read per
// process.
type SpannerSource struct {
	client *spanner.Client
}

// NewSpannerSource creates a SpannerSource over the given client.
func NewSpannerSource(client *spanner.Client) contracts.CatalogSource {
	return &SpannerSource{
		client: client,
	}
}

// LoadAll reads every row of the products table.
func (s *SpannerSource) LoadAll(ctx context.Context) ([]domain.Product, error) {
	iter := s.client.Single().Read(ctx, m_product.TableName, spanner.AllKeys(), m_product.Columns)
	defer iter.Stop()

	products := make([]domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse product row: %w", err)
		}

		product, err := dataToProduct(&data)
		if err != nil {
			return nil, fmt.Errorf("convert product %d: %w", data.ProductID, err)
		}
		products = append(products, product)
	}

	return products, nil
}

// dataToProduct converts a database row to a domain Product.
func dataToProduct(data *m_product.Data) (domain.Product, error) {
	images, err := decodeImages(data.Images)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		ID:              data.ProductID,
		Slug:            data.Slug,
		Title:           data.Title,
		Description:     data.Description,
		PriceKRW:        data.PriceKRW,
		DiscountPercent: data.DiscountPercent,
		Category:        data.Category,
		Brand:           data.Brand,
		Rating:          data.Rating,
		RatingCount:     data.RatingCount,
		Stock:           data.Stock,
		Images:          images,
		CreatedAt:       data.CreatedAt,
	}, nil
}
