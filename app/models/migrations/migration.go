package migrations

import (
	"github.com/luxystore/luxy-api/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.AdminUser{}, &models.Category{}, &models.Product{}, &models.ProductImage{}, &models.CartItem{}, &models.Message{})
}
