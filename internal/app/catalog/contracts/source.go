package contracts

import (
	"context"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
)

// CatalogSource is the external collaborator that supplies the full product
// collection. Implementations return the complete dataset or an error, never
// a partial result. The store calls LoadAll at most once per process.
type CatalogSource interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
}

// Catalog is the read side handed to query use cases: the cached snapshot
// plus the recorded load failure, if any. A non-nil error always accompanies
// an empty snapshot. Callers must treat the returned slice as immutable.
type Catalog interface {
	Products(ctx context.Context) ([]domain.Product, error)
}
