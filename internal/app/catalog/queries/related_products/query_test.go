package related_products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-browse-service/tests/testutil"
)

func newFixtureQuery() *Query {
	return NewQuery(&testutil.StaticCatalog{Items: []domain.Product{
		testutil.Product(1, testutil.WithCategory("Electronics"), testutil.WithRating(4.0, 10)),
		testutil.Product(2, testutil.WithCategory("Electronics"), testutil.WithRating(4.8, 10)),
		testutil.Product(3, testutil.WithCategory("Home"), testutil.WithRating(5.0, 10)),
		testutil.Product(4, testutil.WithCategory("Electronics"), testutil.WithRating(4.4, 10)),
		testutil.Product(5, testutil.WithCategory("Electronics"), testutil.WithRating(3.2, 10)),
	}})
}

func TestQuery_Execute(t *testing.T) {
	query := newFixtureQuery()

	t.Run("same category, self excluded, rating descending", func(t *testing.T) {
		related := query.Execute(context.Background(), 1, 10)

		require.Len(t, related, 3)
		assert.Equal(t, int64(2), related[0].ID)
		assert.Equal(t, int64(4), related[1].ID)
		assert.Equal(t, int64(5), related[2].ID)
		for _, p := range related {
			assert.Equal(t, "Electronics", p.Category)
			assert.NotEqual(t, int64(1), p.ID)
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		related := query.Execute(context.Background(), 1, 2)
		require.Len(t, related, 2)
		assert.Equal(t, int64(2), related[0].ID)
	})

	t.Run("unresolvable id yields empty", func(t *testing.T) {
		assert.Empty(t, query.Execute(context.Background(), 999, 4))
	})

	t.Run("product without category peers yields empty", func(t *testing.T) {
		assert.Empty(t, query.Execute(context.Background(), 3, 4))
	})

	t.Run("unavailable catalog yields empty", func(t *testing.T) {
		failing := NewQuery(&testutil.StaticCatalog{Err: errors.New("boom")})
		assert.Empty(t, failing.Execute(context.Background(), 1, 4))
	})
}
