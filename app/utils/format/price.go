package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupee = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ","}

// Price renders a rupee amount with grouping, e.g. ₹2,299.
func Price(amount decimal.Decimal) string {
	return rupee.FormatMoneyDecimal(amount)
}
