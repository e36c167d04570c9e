package models

import (
	"time"

	"gorm.io/gorm"
)

// User carries no role column. Administrative privilege lives in the separate
// admin_users relation and is looked up fresh on every gated request.
type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone     string `gorm:"size:20" json:"phone,omitempty"`
	Password  string `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
