package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/luxystore/luxy-api/app/utils/renderer"
)

type stubProductRepo struct {
	products []models.Product
}

func (s *stubProductRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), s.products...), nil
}

func (s *stubProductRepo) GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *stubProductRepo) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) GetNewProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) GetOnSaleProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id string) error               { return nil }
func (s *stubProductRepo) ReplaceImages(ctx context.Context, productID string, images []models.ProductImage) error {
	return nil
}
func (s *stubProductRepo) UpdateCategory(ctx context.Context, productID, newCategory string) error {
	return nil
}

func storefrontFixture() *ProductHandler {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubProductRepo{products: []models.Product{
		{ID: "1", Name: "Heritage Chronograph", Category: "mens-watches", Price: decimal.NewFromInt(5000), CreatedAt: base.Add(time.Hour)},
		{ID: "2", Name: "Aviator Sunglasses", Category: "sunglasses", Price: decimal.NewFromInt(150000), CreatedAt: base},
	}}
	catalog := services.NewCatalogService(repo, nil)
	return NewProductHandler(catalog, nil, renderer.New())
}

type productListResponse struct {
	Products []models.Product `json:"products"`
}

func TestProductsFilterByCategoryAndPrice(t *testing.T) {
	handler := storefrontFixture()

	req := httptest.NewRequest("GET", "/api/products?category=mens-watches&min_price=0&max_price=200000", nil)
	rec := httptest.NewRecorder()
	handler.Products(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp productListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != "1" {
		t.Errorf("filtered products = %+v, want just product 1", resp.Products)
	}
}

func TestProductsDefaultSortNewestFirst(t *testing.T) {
	handler := storefrontFixture()

	req := httptest.NewRequest("GET", "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.Products(rec, req)

	var resp productListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(resp.Products) != 2 || resp.Products[0].ID != "1" || resp.Products[1].ID != "2" {
		t.Errorf("products = %+v, want newest first [1 2]", resp.Products)
	}
}

func TestProductsResolvePlaceholderImage(t *testing.T) {
	handler := storefrontFixture()

	req := httptest.NewRequest("GET", "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.Products(rec, req)

	var resp productListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	for _, p := range resp.Products {
		if p.ImageURL != services.PlaceholderImage {
			t.Errorf("product %s image = %q, want placeholder", p.ID, p.ImageURL)
		}
	}
}

func TestProductDetailNotFound(t *testing.T) {
	handler := storefrontFixture()

	req := httptest.NewRequest("GET", "/api/products/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()
	handler.ProductDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
