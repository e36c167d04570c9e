package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug        string         `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description string         `gorm:"size:255" json:"description,omitempty"`
	ImageURL    string         `gorm:"size:512;column:image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// FixedCategories is the storefront's category table. The set is small and
// stable; the seeder writes it to the database and the slug normalizer
// canonicalizes against it.
var FixedCategories = []Category{
	{ID: "1", Name: "Men's Watches", Slug: "mens-watches", Description: "Premium collection of men's watches"},
	{ID: "2", Name: "Ladies Watches", Slug: "ladies-watches", Description: "Elegant collection of ladies watches"},
	{ID: "3", Name: "Sunglasses", Slug: "sunglasses", Description: "Stylish and protective eyewear"},
	{ID: "4", Name: "Belts", Slug: "belts", Description: "Premium leather belts"},
	{ID: "5", Name: "Wallets", Slug: "wallets", Description: "High-quality leather wallets"},
	{ID: "6", Name: "Perfumes", Slug: "perfumes", Description: "Luxury fragrances for all occasions"},
}
