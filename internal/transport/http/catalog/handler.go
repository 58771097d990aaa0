// Package catalog exposes the catalog query facade over HTTP. All endpoints
// are read-only; failure modes degrade to empty results or 404s, never 5xx
// on the listing path.
package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/catalog_facets"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/list_slugs"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/queries/related_products"
	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/store"
	"github.com/light-bringer/catalog-browse-service/internal/config"
)

// Handler routes catalog API requests to the query use cases.
type Handler struct {
	listQuery    *list_products.Query
	getQuery     *get_product.Query
	relatedQuery *related_products.Query
	facetsQuery  *catalog_facets.Query
	slugsQuery   *list_slugs.Query
	store        *store.Store
	config       *config.Manager
}

// NewHandler creates a Handler over the wired query use cases.
func NewHandler(
	listQuery *list_products.Query,
	getQuery *get_product.Query,
	relatedQuery *related_products.Query,
	facetsQuery *catalog_facets.Query,
	slugsQuery *list_slugs.Query,
	st *store.Store,
	cfg *config.Manager,
) *Handler {
	return &Handler{
		listQuery:    listQuery,
		getQuery:     getQuery,
		relatedQuery: relatedQuery,
		facetsQuery:  facetsQuery,
		slugsQuery:   slugsQuery,
		store:        st,
		config:       cfg,
	}
}

// Register mounts the catalog routes.
func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/api/v1")
	v1.GET("/products", h.ListProducts)
	v1.GET("/products/:slug", h.GetProduct)
	v1.GET("/products/:slug/related", h.RelatedProducts)
	v1.GET("/categories", h.Categories)
	v1.GET("/brands", h.Brands)
	v1.GET("/price-range", h.PriceRange)
	v1.GET("/slugs", h.ListSlugs)
	r.GET("/healthz", h.Health)
}

// ListProducts handles GET /api/v1/products.
func (h *Handler) ListProducts(c *gin.Context) {
	cfg := h.config.Get()

	req := &list_products.Request{
		Page:     parsePage(c.Query("page")),
		PageSize: parsePageSize(c.Query("pageSize"), cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize),
		Filter: domain.Filter{
			Category: c.Query("category"),
			Brand:    c.Query("brand"),
			Search:   c.Query("search"),
			MinPrice: parseOptionalInt(c.Query("minPrice")),
			MaxPrice: parseOptionalInt(c.Query("maxPrice")),
			InStock:  parseBool(c.Query("inStock")),
		},
		Sort: domain.NormalizeSortKey(c.Query("sort")),
	}

	result := h.listQuery.Execute(c.Request.Context(), req)
	c.JSON(http.StatusOK, toListResponse(result))
}

// GetProduct handles GET /api/v1/products/:slug where :slug is the combined
// "<id>-<slug>" identifier.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.getQuery.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// RelatedProducts handles GET /api/v1/products/:slug/related. An
// unresolvable slug yields an empty list, matching the facade contract.
func (h *Handler) RelatedProducts(c *gin.Context) {
	cfg := h.config.Get()
	limit := parseLimit(c.Query("limit"), cfg.Catalog.RelatedLimit, cfg.Catalog.MaxPageSize)

	items := []domain.Product{}
	if id, ok := domain.DecodeID(c.Param("slug")); ok {
		items = h.relatedQuery.Execute(c.Request.Context(), id, limit)
	}
	c.JSON(http.StatusOK, gin.H{"items": toProductResponses(items)})
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.facetsQuery.Categories()})
}

// Brands handles GET /api/v1/brands.
func (h *Handler) Brands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": h.facetsQuery.Brands(c.Request.Context())})
}

// PriceRange handles GET /api/v1/price-range.
func (h *Handler) PriceRange(c *gin.Context) {
	pr := h.facetsQuery.EffectivePriceRange(c.Request.Context())
	c.JSON(http.StatusOK, priceRangeResponse{Min: pr.Min, Max: pr.Max})
}

// ListSlugs handles GET /api/v1/slugs for sitemap generation.
func (h *Handler) ListSlugs(c *gin.Context) {
	offset := parseOffset(c.Query("offset"))
	limit := parseLimit(c.Query("limit"), defaultSlugLimit, maxSlugLimit)

	result := h.slugsQuery.Execute(c.Request.Context(), offset, limit)
	c.JSON(http.StatusOK, slugsResponse{
		Slugs:   result.Slugs,
		HasMore: result.HasMore,
		Total:   result.Total,
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	stats := h.store.Stats(c.Request.Context())
	c.JSON(http.StatusOK, healthResponse{
		Status:       "ok",
		ProductCount: stats.ProductCount,
		LoadedAt:     stats.LoadedAt,
		LoadFailed:   stats.LoadFailed,
	})
}
