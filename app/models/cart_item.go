package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem mirrors one row of the per-user cart table. Name, price and image
// are denormalized at add time so the cart stays renderable even if the
// product is later edited or removed.
type CartItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"-"`
	UserID    string          `gorm:"size:36;not null;uniqueIndex:idx_user_cart_user_product" json:"-"`
	ProductID string          `gorm:"size:36;not null;uniqueIndex:idx_user_cart_user_product" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Image     string          `gorm:"size:512" json:"image"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

func (CartItem) TableName() string {
	return "user_cart"
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
