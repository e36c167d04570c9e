package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	catalog      *services.CatalogService
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewProductHandler(catalog *services.CatalogService, categoryRepo repositories.CategoryRepositoryImpl, r *render.Render) *ProductHandler {
	return &ProductHandler{catalog, categoryRepo, r}
}

// Products lists the catalog with the storefront's filter/sort composition:
// ?category=a&category=b (union), ?min_price / ?max_price (inclusive),
// ?sort=newest|price-asc|price-desc|popular.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.FetchAllProducts(r.Context())
	if err != nil {
		log.Printf("ProductHandler: failed to fetch products: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch products"})
		return
	}

	query := r.URL.Query()

	minPrice := decimal.Zero
	if raw := query.Get("min_price"); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil {
			minPrice = parsed
		}
	}
	maxPrice := decimal.NewFromInt(200000)
	if raw := query.Get("max_price"); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil {
			maxPrice = parsed
		}
	}

	sortKey := services.SortKey(query.Get("sort"))
	if sortKey == "" {
		sortKey = services.SortNewest
	}

	products = services.FilterSort(products, query["category"], minPrice, maxPrice, sortKey)

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	products, err := h.catalog.FetchProductsByCategory(r.Context(), slug)
	if err != nil {
		log.Printf("ProductHandler: failed to fetch category %q: %v", slug, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch products"})
		return
	}

	// An empty list is a valid "no products in this category" outcome.
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.catalog.FetchProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ProductHandler: failed to fetch product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	h.renderProductList(w, r, h.catalog.FetchFeaturedProducts)
}

func (h *ProductHandler) NewProducts(w http.ResponseWriter, r *http.Request) {
	h.renderProductList(w, r, h.catalog.FetchNewProducts)
}

func (h *ProductHandler) OnSaleProducts(w http.ResponseWriter, r *http.Request) {
	h.renderProductList(w, r, h.catalog.FetchOnSaleProducts)
}

func (h *ProductHandler) renderProductList(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]models.Product, error)) {
	products, err := fetch(r.Context())
	if err != nil {
		log.Printf("ProductHandler: failed to fetch product list: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch products"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ProductHandler: failed to fetch categories: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch categories"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
