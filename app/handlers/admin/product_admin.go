package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/luxystore/luxy-api/app/handlers"
	"github.com/luxystore/luxy-api/app/helpers"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/luxystore/luxy-api/app/utils/cache"
	"github.com/luxystore/luxy-api/app/utils/calc"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductAdminHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
	validator   *validator.Validate
	cache       *cache.ProductCache
	feed        *handlers.CatalogFeed
}

func NewProductAdminHandler(productRepo repositories.ProductRepositoryImpl, r *render.Render, v *validator.Validate, productCache *cache.ProductCache, feed *handlers.CatalogFeed) *ProductAdminHandler {
	return &ProductAdminHandler{
		productRepo: productRepo,
		render:      r,
		validator:   v,
		cache:       productCache,
		feed:        feed,
	}
}

type ProductImageForm struct {
	ImageURL  string `json:"imageUrl" validate:"required"`
	IsPrimary bool   `json:"isPrimary"`
}

type ProductForm struct {
	Name          string             `json:"name" validate:"required,min=2,max=255"`
	Description   string             `json:"description"`
	Price         decimal.Decimal    `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal   `json:"originalPrice,omitempty"`
	Category      string             `json:"category" validate:"required"`
	ImageURL      string             `json:"imageUrl"`
	Featured      bool               `json:"featured"`
	IsNew         bool               `json:"isNew"`
	OnSale        bool               `json:"onSale"`
	Discount      int                `json:"discount" validate:"gte=0,lte=100"`
	Rating        float64            `json:"rating" validate:"gte=0,lte=5"`
	Images        []ProductImageForm `json:"images"`
}

func (h *ProductAdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("ProductAdminHandler: failed to list products: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch products"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductAdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	product := h.productFromForm(form, "")
	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("ProductAdminHandler: failed to create product %q: %v", form.Name, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to save product"})
		return
	}

	if err := h.saveImages(r, product.ID, form.Images); err != nil {
		log.Printf("ProductAdminHandler: failed to save images for product %s: %v", product.ID, err)
	}

	h.afterWrite(r, "created", product.ID)
	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductAdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ProductAdminHandler: failed to load product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to load product"})
		return
	}

	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	h.applyForm(product, form)
	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("ProductAdminHandler: failed to update product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to save product"})
		return
	}

	if err := h.saveImages(r, id, form.Images); err != nil {
		log.Printf("ProductAdminHandler: failed to save images for product %s: %v", id, err)
	}

	h.afterWrite(r, "updated", id)
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductAdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("ProductAdminHandler: failed to delete product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to delete product"})
		return
	}

	h.afterWrite(r, "deleted", id)
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ProductAdminHandler) decodeForm(w http.ResponseWriter, r *http.Request) (*ProductForm, bool) {
	var form ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return nil, false
	}

	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.ValidationErrors(err),
		})
		return nil, false
	}
	return &form, true
}

func (h *ProductAdminHandler) productFromForm(form *ProductForm, id string) *models.Product {
	product := &models.Product{ID: id}
	h.applyForm(product, form)
	return product
}

func (h *ProductAdminHandler) applyForm(product *models.Product, form *ProductForm) {
	product.Name = form.Name
	product.Description = form.Description
	product.Price = form.Price
	product.OriginalPrice = form.OriginalPrice
	// Free-form admin input like "MENS WATCH" must land as a canonical slug
	// or the category pages will never find the product.
	product.Category = services.NormalizeCategorySlug(form.Category)
	product.ImageURL = form.ImageURL
	product.Featured = form.Featured
	product.IsNew = form.IsNew
	product.OnSale = form.OnSale
	product.Discount = form.Discount
	if form.OnSale && form.Discount == 0 && form.OriginalPrice != nil {
		product.Discount = calc.DiscountPercent(*form.OriginalPrice, form.Price)
	}
	product.Rating = form.Rating
	product.Images = nil
}

func (h *ProductAdminHandler) saveImages(r *http.Request, productID string, images []ProductImageForm) error {
	if images == nil {
		return nil
	}
	rows := make([]models.ProductImage, 0, len(images))
	for _, img := range images {
		rows = append(rows, models.ProductImage{
			ImageURL:  img.ImageURL,
			IsPrimary: img.IsPrimary,
		})
	}
	return h.productRepo.ReplaceImages(r.Context(), productID, rows)
}

func (h *ProductAdminHandler) afterWrite(r *http.Request, action, productID string) {
	if h.cache != nil {
		h.cache.Invalidate(r.Context())
	}
	if h.feed != nil {
		h.feed.Broadcast(handlers.CatalogEvent{Action: action, ProductID: productID})
	}
}
