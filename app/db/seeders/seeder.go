package seeders

import (
	"log"

	"gorm.io/gorm"

	"github.com/luxystore/luxy-api/app/db/fakers"
	"github.com/luxystore/luxy-api/app/models"
)

const productsPerCategory = 4

// DBSeed writes the fixed category set and a handful of demo products per
// category. Categories are upserted so reseeding an existing database is
// safe; demo products are only added when a category is empty.
func DBSeed(db *gorm.DB) error {
	for _, category := range models.FixedCategories {
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
			return err
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("category = ?", category.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		for i := 0; i < productsPerCategory; i++ {
			product := fakers.ProductFaker(category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeder: seeded %d products for %s", productsPerCategory, category.Slug)
	}
	return nil
}
