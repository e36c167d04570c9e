package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SalePrice applies a percentage discount to the original price, rounded to
// whole rupees the way the storefront displays prices.
func SalePrice(original, discountPercent decimal.Decimal) decimal.Decimal {
	discount := original.Mul(discountPercent).Div(hundred)
	return original.Sub(discount).Round(0)
}

// DiscountPercent derives the advertised discount badge from the original and
// sale prices. Returns zero when the pair makes no sense as a markdown.
func DiscountPercent(original, sale decimal.Decimal) int {
	if original.LessThanOrEqual(decimal.Zero) || sale.GreaterThanOrEqual(original) {
		return 0
	}
	percent := original.Sub(sale).Mul(hundred).Div(original)
	return int(percent.Round(0).IntPart())
}
