package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luxystore/luxy-api/app/models"
)

func TestNormalizeCategorySlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "mens-watches", "mens-watches"},
		{"display name with possessive", "Men's Watches", "mens-watches"},
		{"legacy singular alias", "mens-watch", "mens-watches"},
		{"uppercase with spaces", "LADIES WATCHES", "ladies-watches"},
		{"surrounding whitespace", "  sunglasses  ", "sunglasses"},
		{"inner whitespace run", "ladies   watches", "ladies-watches"},
		{"punctuation stripped", "belts!!", "belts"},
		{"empty input", "", ""},
		{"only punctuation", "???", ""},
		{"unknown category passes through", "handbags", "handbags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCategorySlug(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeCategorySlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeCategorySlug(got); again != got {
				t.Errorf("not idempotent: NormalizeCategorySlug(%q) = %q", got, again)
			}
		})
	}
}

func TestResolveImageURL(t *testing.T) {
	primary := models.ProductImage{ImageURL: "/img/primary.jpg", IsPrimary: true}
	secondary := models.ProductImage{ImageURL: "/img/secondary.jpg"}

	tests := []struct {
		name    string
		product models.Product
		images  []models.ProductImage
		want    string
	}{
		{"primary wins over order", models.Product{ImageURL: "/img/own.jpg"}, []models.ProductImage{secondary, primary}, "/img/primary.jpg"},
		{"first image when none primary", models.Product{ImageURL: "/img/own.jpg"}, []models.ProductImage{secondary}, "/img/secondary.jpg"},
		{"product field when no images", models.Product{ImageURL: "/img/own.jpg"}, nil, "/img/own.jpg"},
		{"placeholder when nothing set", models.Product{}, nil, PlaceholderImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveImageURL(tt.product, tt.images); got != tt.want {
				t.Errorf("ResolveImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func catalogFixture() []models.Product {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: "1", Category: "mens-watches", Price: decimal.NewFromInt(5000), Rating: 4.5, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "2", Category: "sunglasses", Price: decimal.NewFromInt(150000), Rating: 4.8, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "3", Category: "mens-watch", Price: decimal.NewFromInt(80000), Rating: 3.9, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "4", Category: "belts", Price: decimal.NewFromInt(1500), Rating: 4.8, CreatedAt: base},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterSort(t *testing.T) {
	min := decimal.Zero
	max := decimal.NewFromInt(200000)

	tests := []struct {
		name       string
		categories []string
		minPrice   decimal.Decimal
		maxPrice   decimal.Decimal
		key        SortKey
		want       []string
	}{
		{"no filters newest first", nil, min, max, SortNewest, []string{"1", "2", "3", "4"}},
		{"category filter matches legacy rows", []string{"mens-watches"}, min, max, SortNewest, []string{"1", "3"}},
		{"category filter accepts display names", []string{"Men's Watches"}, min, max, SortNewest, []string{"1", "3"}},
		{"category union", []string{"belts", "sunglasses"}, min, max, SortNewest, []string{"2", "4"}},
		{"price bounds are inclusive", nil, decimal.NewFromInt(1500), decimal.NewFromInt(5000), SortNewest, []string{"1", "4"}},
		{"price excludes outside range", []string{"sunglasses"}, min, decimal.NewFromInt(100000), SortNewest, nil},
		{"price ascending", nil, min, max, SortPriceAsc, []string{"4", "1", "3", "2"}},
		{"price descending", nil, min, max, SortPriceDesc, []string{"2", "3", "1", "4"}},
		{"popular keeps input order on ties", nil, min, max, SortPopular, []string{"2", "4", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSort(catalogFixture(), tt.categories, tt.minPrice, tt.maxPrice, tt.key)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("FilterSort() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterSortDoesNotMutateInput(t *testing.T) {
	products := catalogFixture()
	before := ids(products)

	FilterSort(products, nil, decimal.Zero, decimal.NewFromInt(200000), SortPriceAsc)

	if !equalIDs(ids(products), before) {
		t.Errorf("input order changed: %v, want %v", ids(products), before)
	}
}

type recordingCategoryRepo struct {
	fakeProductRepo
	rows  map[string][]models.Product
	slugs []string
}

func (r *recordingCategoryRepo) GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	r.slugs = append(r.slugs, slug)
	return r.rows[slug], nil
}

func TestFetchProductsByCategoryNormalizesSlug(t *testing.T) {
	repo := &recordingCategoryRepo{rows: map[string][]models.Product{
		"mens-watches": {{ID: "1", Category: "mens-watches"}},
	}}
	svc := NewCatalogService(repo, nil)

	// The legacy singular slug must reach the repository as the canonical
	// plural, so rows stored under "mens-watches" come back.
	products, err := svc.FetchProductsByCategory(context.Background(), "mens-watch")
	if err != nil {
		t.Fatalf("FetchProductsByCategory() error = %v", err)
	}
	if len(products) != 1 || products[0].ID != "1" {
		t.Errorf("products = %+v, want the mens-watches row", products)
	}
	if len(repo.slugs) != 1 || repo.slugs[0] != "mens-watches" {
		t.Errorf("repository queried with %v, want [mens-watches]", repo.slugs)
	}
}

func TestFetchProductsByCategoryResolvesImages(t *testing.T) {
	repo := &recordingCategoryRepo{rows: map[string][]models.Product{
		"belts": {{ID: "1", Category: "belts", Images: []models.ProductImage{{ImageURL: "/img/belt.jpg", IsPrimary: true}}}},
	}}
	svc := NewCatalogService(repo, nil)

	products, err := svc.FetchProductsByCategory(context.Background(), "Belts")
	if err != nil {
		t.Fatalf("FetchProductsByCategory() error = %v", err)
	}
	if len(products) != 1 || products[0].ImageURL != "/img/belt.jpg" {
		t.Errorf("products = %+v, want the primary image resolved", products)
	}
}

func TestFetchProductsByCategoryEmptyResult(t *testing.T) {
	repo := &recordingCategoryRepo{rows: map[string][]models.Product{}}
	svc := NewCatalogService(repo, nil)

	products, err := svc.FetchProductsByCategory(context.Background(), "perfumes")
	if err != nil {
		t.Fatalf("empty category is not an error, got %v", err)
	}
	if len(products) != 0 {
		t.Errorf("products = %+v, want none", products)
	}
}

func TestFilterSortDeterministic(t *testing.T) {
	min := decimal.Zero
	max := decimal.NewFromInt(200000)

	first := FilterSort(catalogFixture(), []string{"mens-watches"}, min, max, SortPopular)
	second := FilterSort(catalogFixture(), []string{"mens-watches"}, min, max, SortPopular)

	if !equalIDs(ids(first), ids(second)) {
		t.Errorf("same inputs produced different orders: %v vs %v", ids(first), ids(second))
	}
}
