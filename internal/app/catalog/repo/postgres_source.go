package repo

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// PostgresSource bulk-reads the catalog from a Postgres products table using
// the pgx stdlib driver.
type PostgresSource struct {
	db *sql.DB
}

// OpenPostgres opens and pings a Postgres connection for the given DSN.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NewPostgresSource creates a PostgresSource over the given connection.
func NewPostgresSource(db *sql.DB) contracts.CatalogSource {
	return &PostgresSource{
		db: db,
	}
}

// LoadAll reads every row of the products table in id order.
func (s *PostgresSource) LoadAll(ctx context.Context) ([]domain.Product, error) {
	const query = `
		SELECT
			id, slug, title, description, brand, category,
			price_krw, discount_percent, rating, rating_count, stock,
			images, created_at
		FROM products
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var (
			p         domain.Product
			rawImages string
		)
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.Description, &p.Brand, &p.Category,
			&p.PriceKRW, &p.DiscountPercent, &p.Rating, &p.RatingCount, &p.Stock,
			&rawImages, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}

		images, err := decodeImages(rawImages)
		if err != nil {
			return nil, fmt.Errorf("convert product %d: %w", p.ID, err)
		}
		p.Images = images
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}
