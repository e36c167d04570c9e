package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/utils/calc"
)

var adjectives = []string{"Classic", "Heritage", "Signature", "Royal", "Executive", "Vintage"}

// ProductFaker builds one demo product for the given category. Prices land
// inside the storefront's price filter range so seeded catalogs behave like
// the real one.
func ProductFaker(category models.Category) *models.Product {
	name := fmt.Sprintf("%s %s", adjectives[rand.Intn(len(adjectives))], faker.Word())
	productID := uuid.New().String()

	price := decimal.NewFromInt(int64(rand.Intn(190) + 10)).Mul(decimal.NewFromInt(1000))

	product := &models.Product{
		ID:       productID,
		Name:     name,
		Category: category.Slug,
		Price:    price,
		Rating:   float64(rand.Intn(21)+30) / 10,
		Featured: rand.Intn(4) == 0,
		IsNew:    rand.Intn(3) == 0,
	}

	product.Description = faker.Paragraph()

	if rand.Intn(3) == 0 {
		discount := decimal.NewFromInt(int64(rand.Intn(4)+1) * 10)
		original := price
		product.OnSale = true
		product.OriginalPrice = &original
		product.Price = calc.SalePrice(original, discount)
		product.Discount = calc.DiscountPercent(original, product.Price)
	}

	imageURL := fmt.Sprintf("/images/products/%s.jpg", slug.Make(name))
	product.ImageURL = imageURL
	product.Images = []models.ProductImage{
		{
			ID:        uuid.New().String(),
			ProductID: productID,
			ImageURL:  imageURL,
			IsPrimary: true,
		},
	}

	return product
}
