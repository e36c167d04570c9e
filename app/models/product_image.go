package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// At most one image per product carries IsPrimary; the repository enforces
// this on save by clearing the flag on siblings.
type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;index;not null" json:"productId"`
	ImageURL  string    `gorm:"size:512;not null;column:image_url" json:"imageUrl"`
	IsPrimary bool      `gorm:"column:is_primary" json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}
