package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product.Category holds a Category.Slug, not an ID. The storefront keys
// products by slug directly, so category membership is a string match.
type Product struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Description   string           `gorm:"type:text" json:"description"`
	Price         decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(16,2)" json:"originalPrice,omitempty"`
	Category      string           `gorm:"size:100;index" json:"category"`
	ImageURL      string           `gorm:"size:512;column:image_url" json:"imageUrl"`
	Images        []ProductImage   `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Featured      bool             `json:"featured"`
	IsNew         bool             `gorm:"column:is_new" json:"isNew"`
	OnSale        bool             `gorm:"column:on_sale" json:"onSale"`
	Discount      int              `json:"discount"`
	Rating        float64          `json:"rating"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
