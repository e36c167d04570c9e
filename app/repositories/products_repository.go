package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/luxystore/luxy-api/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetNewProducts(ctx context.Context) ([]models.Product, error)
	GetOnSaleProducts(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	ReplaceImages(ctx context.Context, productID string, images []models.ProductImage) error
	UpdateCategory(ctx context.Context, productID, newCategory string) error
}

// CategoryAliases maps historical category slugs to their canonical form.
// Old product rows were written with the singular slug before the category
// table settled on the plural.
var CategoryAliases = map[string]string{
	"mens-watch":   "mens-watches",
	"mens-watches": "mens-watch",
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Images").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching products: %v", models.ErrDataUnavailable, err)
	}
	return products, nil
}

// GetByCategorySlug resolves products in three passes, stopping at the first
// non-empty result: exact slug match, known-alias match, then a substring
// search with hyphens widened to wildcards. An empty slice after all three is
// a valid "no products in this category" outcome, not an error.
func (p *productRepository) GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	return resolveCategory(ctx, slug, p.findByCategory, p.searchByCategoryPattern)
}

// resolveCategory runs the staged lookup over the two fetchers: exact match
// on the slug, exact match on its alias, then the widened pattern search.
// Later stages only run while earlier ones come back empty.
func resolveCategory(ctx context.Context, slug string, exact, search func(context.Context, string) ([]models.Product, error)) ([]models.Product, error) {
	products, err := exact(ctx, slug)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		return products, nil
	}

	if alias, ok := CategoryAliases[slug]; ok {
		products, err = exact(ctx, alias)
		if err != nil {
			return nil, err
		}
		if len(products) > 0 {
			return products, nil
		}
	}

	return search(ctx, wildcardPattern(slug))
}

// wildcardPattern widens a slug into an ILIKE pattern, so "mens-watches"
// also matches rows stored as "mens watches" or "MENS WATCHES".
func wildcardPattern(slug string) string {
	return "%" + strings.ReplaceAll(slug, "-", "%") + "%"
}

func (p *productRepository) searchByCategoryPattern(ctx context.Context, pattern string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category ILIKE ?", pattern).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("%w: flexible category search %q: %v", models.ErrDataUnavailable, pattern, err)
	}
	return products, nil
}

func (p *productRepository) findByCategory(ctx context.Context, slug string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category = ?", slug).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching category %q: %v", models.ErrDataUnavailable, slug, err)
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Images").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: fetching product %s: %v", models.ErrDataUnavailable, id, err)
	}
	return &product, nil
}

func (p *productRepository) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return p.findByFlag(ctx, "featured")
}

func (p *productRepository) GetNewProducts(ctx context.Context) ([]models.Product, error) {
	return p.findByFlag(ctx, "is_new")
}

func (p *productRepository) GetOnSaleProducts(ctx context.Context) ([]models.Product, error) {
	return p.findByFlag(ctx, "on_sale")
}

func (p *productRepository) findByFlag(ctx context.Context, column string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Images").
		Where(column+" = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s products: %v", models.ErrDataUnavailable, column, err)
	}
	return products, nil
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

// ReplaceImages swaps the product's image set. Exactly one incoming image may
// be flagged primary; if several are, only the first keeps the flag.
func (p *productRepository) ReplaceImages(ctx context.Context, productID string, images []models.ProductImage) error {
	seenPrimary := false
	for i := range images {
		images[i].ProductID = productID
		if images[i].IsPrimary {
			if seenPrimary {
				images[i].IsPrimary = false
			}
			seenPrimary = true
		}
	}

	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		return tx.Create(&images).Error
	})
}

func (p *productRepository) UpdateCategory(ctx context.Context, productID, newCategory string) error {
	return p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("category", newCategory).Error
}
