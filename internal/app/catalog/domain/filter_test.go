package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []Product {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: 1, Title: "Wireless Mouse", Brand: "Acme", Category: "Electronics", PriceKRW: 100000, DiscountPercent: 25, Stock: 5, CreatedAt: created},
		{ID: 2, Title: "Desk Lamp", Brand: "Zenova", Category: "Home", PriceKRW: 30000, Stock: 0, CreatedAt: created},
		{ID: 3, Title: "Gaming Keyboard", Brand: "HyperTech", Category: "Electronics", PriceKRW: 90000, DiscountPercent: 10, Stock: 12, CreatedAt: created},
		{ID: 4, Title: "Acme Classic Bottle", Brand: "K-Craft", Category: "Sports", PriceKRW: 15000, Stock: 3, CreatedAt: created},
	}
}

func ids(products []Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func int64Ptr(v int64) *int64 { return &v }

func TestApplyFilter(t *testing.T) {
	products := filterFixture()

	t.Run("empty filter is identity", func(t *testing.T) {
		result := ApplyFilter(products, Filter{})
		assert.Equal(t, []int64{1, 2, 3, 4}, ids(result))
	})

	t.Run("category equality", func(t *testing.T) {
		result := ApplyFilter(products, Filter{Category: "Electronics"})
		assert.Equal(t, []int64{1, 3}, ids(result))
	})

	t.Run("brand equality", func(t *testing.T) {
		result := ApplyFilter(products, Filter{Brand: "Zenova"})
		assert.Equal(t, []int64{2}, ids(result))
	})

	t.Run("search matches title or brand case-insensitively", func(t *testing.T) {
		result := ApplyFilter(products, Filter{Search: "acme"})
		// Brand match on 1, title match on 4.
		assert.Equal(t, []int64{1, 4}, ids(result))
	})

	t.Run("min price compares effective price inclusively", func(t *testing.T) {
		// Product 1: 100000 at 25% off = 75000 effective.
		excluded := ApplyFilter(products, Filter{MinPrice: int64Ptr(80000)})
		assert.NotContains(t, ids(excluded), int64(1))

		included := ApplyFilter(products, Filter{MinPrice: int64Ptr(75000)})
		assert.Contains(t, ids(included), int64(1))
	})

	t.Run("max price compares effective price inclusively", func(t *testing.T) {
		result := ApplyFilter(products, Filter{MaxPrice: int64Ptr(80000)})
		assert.Contains(t, ids(result), int64(1))
		assert.NotContains(t, ids(result), int64(3)) // 90000 at 10% off = 81000
	})

	t.Run("in stock off keeps out-of-stock items", func(t *testing.T) {
		result := ApplyFilter(products, Filter{})
		assert.Contains(t, ids(result), int64(2))
	})

	t.Run("in stock on excludes zero stock", func(t *testing.T) {
		result := ApplyFilter(products, Filter{InStock: true})
		assert.NotContains(t, ids(result), int64(2))
	})

	t.Run("constraints are conjunctive", func(t *testing.T) {
		result := ApplyFilter(products, Filter{Category: "Electronics", MaxPrice: int64Ptr(80000)})
		assert.Equal(t, []int64{1}, ids(result))
	})

	t.Run("result is a subset in input order", func(t *testing.T) {
		f := Filter{InStock: true}
		result := ApplyFilter(products, f)
		require.LessOrEqual(t, len(result), len(products))
		for _, p := range result {
			assert.True(t, f.Matches(p))
		}
		assert.Equal(t, []int64{1, 3, 4}, ids(result))
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		before := ids(products)
		_ = ApplyFilter(products, Filter{Category: "Home"})
		assert.Equal(t, before, ids(products))
	})
}
