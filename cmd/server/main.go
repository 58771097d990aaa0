package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/catalog_facets"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/list_slugs"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/related_products"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/store"
	"github.com/light-bringer/catalog-browse-service/internal/config"
	"github.com/light-bringer/catalog-browse-service/internal/pkg/clock"
	catalogtransport "github.com/light-bringer/catalog-browse-service/internal/transport/http/catalog"
	"github.com/light-bringer/catalog-browse-service/internal/transport/http/middleware"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load .env (optional) and configuration
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	manager, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	manager.EnableHotReload()
	cfg := manager.Get()

	log.Printf("Starting Catalog Browse Service...")
	log.Printf("Source: %s", cfg.Source.Kind)
	log.Printf("HTTP Port: %d", cfg.Server.Port)

	// 2. Create the catalog source
	source, cleanup, err := newSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create catalog source: %w", err)
	}
	defer cleanup()

	// 3. Create the store and query use cases
	st := store.New(source, clock.NewRealClock())

	listQuery := list_products.NewQuery(st)
	getQuery := get_product.NewQuery(st)
	relatedQuery := related_products.NewQuery(st)
	facetsQuery := catalog_facets.NewQuery(st)
	slugsQuery := list_slugs.NewQuery(st)

	// 4. Create the HTTP router and register routes
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())

	handler := catalogtransport.NewHandler(
		listQuery,
		getQuery,
		relatedQuery,
		facetsQuery,
		slugsQuery,
		st,
		manager,
	)
	handler.Register(router)

	// 5. Start the HTTP server in background
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// 6. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	if err := httpServer.Shutdown(context.Background()); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	return nil
}

// newSource builds the configured catalog source and a cleanup function for
// its underlying client, if any.
func newSource(ctx context.Context, cfg *config.Config) (contracts.CatalogSource, func(), error) {
	switch cfg.Source.Kind {
	case config.SourceFile:
		return repo.NewFileSource(cfg.Source.File), func() {}, nil

	case config.SourceSpanner:
		client, err := spanner.NewClient(ctx, cfg.Source.SpannerDatabase)
		if err != nil {
			return nil, nil, fmt.Errorf("create Spanner client: %w", err)
		}
		return repo.NewSpannerSource(client), client.Close, nil

	case config.SourcePostgres:
		db, err := repo.OpenPostgres(ctx, cfg.Source.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresSource(db), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
