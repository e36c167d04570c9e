package admin

import (
	"log"
	"net/http"

	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/unrolled/render"
)

type CategoryAdminHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	render       *render.Render
}

func NewCategoryAdminHandler(categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, r *render.Render) *CategoryAdminHandler {
	return &CategoryAdminHandler{categoryRepo, productRepo, r}
}

func (h *CategoryAdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryAdminHandler: failed to list categories: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch categories"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// FixCategories rewrites every product whose category value is not already a
// canonical slug. Old rows carry values like "MENS WATCH" and "mens-watch";
// category pages only match canonical slugs.
func (h *CategoryAdminHandler) FixCategories(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("CategoryAdminHandler: failed to load products for fix-up: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to load products"})
		return
	}

	fixed := 0
	for _, product := range products {
		normalized := services.NormalizeCategorySlug(product.Category)
		if normalized == product.Category {
			continue
		}
		if err := h.productRepo.UpdateCategory(r.Context(), product.ID, normalized); err != nil {
			log.Printf("CategoryAdminHandler: failed to fix category for product %s: %v", product.ID, err)
			continue
		}
		log.Printf("CategoryAdminHandler: product %s category %q -> %q", product.ID, product.Category, normalized)
		fixed++
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"checked": len(products),
		"fixed":   fixed,
	})
}
