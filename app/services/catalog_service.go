package services

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/utils/cache"
	"github.com/shopspring/decimal"
)

// PlaceholderImage is returned when a product has no usable image anywhere.
const PlaceholderImage = "/placeholder.png"

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortPopular   SortKey = "popular"
)

// categoryAliasFix is applied as the final normalization step. Legacy product
// rows carry the singular slug.
var categoryAliasFix = map[string]string{
	"mens-watch": "mens-watches",
}

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	possessiveRegex = regexp.MustCompile(`'s`)
	slugCharRegex   = regexp.MustCompile(`[^a-z0-9-]`)
)

type CatalogService struct {
	productRepo repositories.ProductRepositoryImpl
	cache       *cache.ProductCache
}

// NewCatalogService wires the catalog read path. cache may be nil, in which
// case every read goes to the database.
func NewCatalogService(productRepo repositories.ProductRepositoryImpl, productCache *cache.ProductCache) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		cache:       productCache,
	}
}

// FetchAllProducts returns every product, newest first, with the display
// image resolved. Reads go through the cache when one is configured; a cache
// miss or error falls back to the database and repopulates asynchronously.
func (s *CatalogService) FetchAllProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.GetProducts(ctx); err == nil {
			return products, nil
		}
	}

	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	resolveImages(products)

	if s.cache != nil {
		go func(products []models.Product) {
			if err := s.cache.SetProducts(context.Background(), products); err != nil {
				log.Printf("CatalogService: failed to repopulate product cache: %v", err)
			}
		}(products)
	}

	return products, nil
}

// FetchProductsByCategory normalizes the requested slug and delegates to the
// repository's three-stage resolution. An empty result is not an error.
func (s *CatalogService) FetchProductsByCategory(ctx context.Context, rawSlug string) ([]models.Product, error) {
	slug := NormalizeCategorySlug(rawSlug)
	products, err := s.productRepo.GetByCategorySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resolveImages(products)
	return products, nil
}

func (s *CatalogService) FetchProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.ImageURL = ResolveImageURL(*product, product.Images)
	return product, nil
}

func (s *CatalogService) FetchFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetFeaturedProducts(ctx)
	if err != nil {
		return nil, err
	}
	resolveImages(products)
	return products, nil
}

func (s *CatalogService) FetchNewProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetNewProducts(ctx)
	if err != nil {
		return nil, err
	}
	resolveImages(products)
	return products, nil
}

func (s *CatalogService) FetchOnSaleProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetOnSaleProducts(ctx)
	if err != nil {
		return nil, err
	}
	resolveImages(products)
	return products, nil
}

func resolveImages(products []models.Product) {
	for i := range products {
		products[i].ImageURL = ResolveImageURL(products[i], products[i].Images)
	}
}

// ResolveImageURL picks the display image for a product. Exactly one branch
// fires: the primary-flagged entry, else the first entry, else the product's
// own image field, else the placeholder. Never errors.
func ResolveImageURL(product models.Product, images []models.ProductImage) string {
	for _, img := range images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(images) > 0 {
		return images[0].ImageURL
	}
	if product.ImageURL != "" {
		return product.ImageURL
	}
	return PlaceholderImage
}

// NormalizeCategorySlug turns free-form category input into a canonical slug:
// lowercase, trimmed, whitespace collapsed to hyphens, possessive apostrophes
// stripped ("Men's" -> "mens"), anything outside [a-z0-9-] removed, then
// canonicalized against the fixed category table and alias-fixed. Idempotent
// and total for any input.
func NormalizeCategorySlug(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = whitespaceRegex.ReplaceAllString(slug, "-")
	slug = possessiveRegex.ReplaceAllString(slug, "s")
	slug = slugCharRegex.ReplaceAllString(slug, "")

	for _, cat := range models.FixedCategories {
		if cat.Slug == slug {
			slug = cat.Slug
			break
		}
	}

	if fixed, ok := categoryAliasFix[slug]; ok {
		slug = fixed
	}

	return slug
}

// FilterSort composes the catalog listing view's filters over a product
// sequence: category union filter (empty set passes everything), inclusive
// price range, then a stable sort by the chosen key. Pure: the input slice is
// never mutated, and equal inputs yield identical output.
func FilterSort(products []models.Product, selectedCategories []string, minPrice, maxPrice decimal.Decimal, key SortKey) []models.Product {
	selected := make(map[string]bool, len(selectedCategories))
	for _, c := range selectedCategories {
		selected[NormalizeCategorySlug(c)] = true
	}

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if len(selected) > 0 && !selected[NormalizeCategorySlug(p.Category)] {
			continue
		}
		if p.Price.Cmp(minPrice) < 0 || p.Price.Cmp(maxPrice) > 0 {
			continue
		}
		result = append(result, p)
	}

	switch key {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Cmp(result[j].Price) < 0
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Cmp(result[j].Price) > 0
		})
	case SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	default: // SortNewest
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}
