package catalog_facets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-browse-service/tests/testutil"
)

func TestQuery_Categories(t *testing.T) {
	query := NewQuery(&testutil.StaticCatalog{})

	categories := query.Categories()
	assert.Equal(t, domain.Categories, categories)

	// The returned slice is a copy; callers cannot corrupt the reference list.
	categories[0] = "Mutated"
	assert.Equal(t, "Electronics", domain.Categories[0])
}

func TestQuery_Brands(t *testing.T) {
	t.Run("deduplicated and lexically sorted", func(t *testing.T) {
		query := NewQuery(&testutil.StaticCatalog{Items: []domain.Product{
			testutil.Product(1, testutil.WithBrand("Zenova")),
			testutil.Product(2, testutil.WithBrand("Acme")),
			testutil.Product(3, testutil.WithBrand("Zenova")),
			testutil.Product(4, testutil.WithBrand("HyperTech")),
		}})

		assert.Equal(t, []string{"Acme", "HyperTech", "Zenova"}, query.Brands(context.Background()))
	})

	t.Run("empty catalog", func(t *testing.T) {
		query := NewQuery(&testutil.StaticCatalog{})
		assert.Empty(t, query.Brands(context.Background()))
	})

	t.Run("unavailable catalog", func(t *testing.T) {
		query := NewQuery(&testutil.StaticCatalog{Err: errors.New("boom")})
		assert.Empty(t, query.Brands(context.Background()))
	})
}

func TestQuery_EffectivePriceRange(t *testing.T) {
	t.Run("min and max use effective prices", func(t *testing.T) {
		query := NewQuery(&testutil.StaticCatalog{Items: []domain.Product{
			testutil.Product(1, testutil.WithPrice(100000, 25)), // 75000
			testutil.Product(2, testutil.WithPrice(50000, 0)),
			testutil.Product(3, testutil.WithPrice(200000, 0)),
		}})

		pr := query.EffectivePriceRange(context.Background())
		assert.InDelta(t, 50000, pr.Min, 0.0001)
		assert.InDelta(t, 200000, pr.Max, 0.0001)
	})

	t.Run("discount can set the minimum", func(t *testing.T) {
		query := NewQuery(&testutil.StaticCatalog{Items: []domain.Product{
			testutil.Product(1, testutil.WithPrice(100000, 60)), // 40000
			testutil.Product(2, testutil.WithPrice(50000, 0)),
		}})

		pr := query.EffectivePriceRange(context.Background())
		assert.InDelta(t, 40000, pr.Min, 0.0001)
	})

	t.Run("empty catalog is zero range", func(t *testing.T) {
		query := NewQuery(&testutil.StaticCatalog{})
		assert.Equal(t, PriceRange{}, query.EffectivePriceRange(context.Background()))
	})
}
