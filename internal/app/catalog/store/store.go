package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-browse-service/internal/pkg/clock"
)

// Store owns the process-wide catalog snapshot. The backing source is read at
// most once; concurrent first readers converge on a single load through
// sync.Once. A failed load degrades to an empty snapshot with the error
// recorded, so the read path never hard-fails on an unavailable source.
type Store struct {
	source contracts.CatalogSource
	clk    clock.Clock

	once     sync.Once
	products []domain.Product
	loadErr  error
	loadedAt time.Time
}

// Stats describes the loaded snapshot for health reporting.
type Stats struct {
	ProductCount int
	LoadedAt     time.Time
	LoadFailed   bool
}

// New creates a Store over the given source. Nothing is loaded until the
// first read.
func New(source contracts.CatalogSource, clk clock.Clock) *Store {
	return &Store{
		source: source,
		clk:    clk,
	}
}

// Products returns the cached snapshot, loading it on the first call. The
// returned error is the recorded load failure; it always accompanies an empty
// snapshot, never a partial one. The slice is shared across callers and must
// be treated as immutable.
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	s.once.Do(func() { s.load(ctx) })
	return s.products, s.loadErr
}

// Stats returns snapshot statistics, triggering the initial load if needed.
func (s *Store) Stats(ctx context.Context) Stats {
	products, err := s.Products(ctx)
	return Stats{
		ProductCount: len(products),
		LoadedAt:     s.loadedAt,
		LoadFailed:   err != nil,
	}
}

func (s *Store) load(ctx context.Context) {
	products, err := s.source.LoadAll(ctx)
	s.loadedAt = s.clk.Now()
	if err != nil {
		s.products = []domain.Product{}
		s.loadErr = fmt.Errorf("load catalog: %w", err)
		log.Printf("Catalog load failed, serving empty catalog: %v", err)
		return
	}
	s.products = products
	log.Printf("Catalog loaded: %d products", len(products))
}
