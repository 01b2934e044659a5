package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ","}

// FormatINR renders a price for display, e.g. ₹1,299.
func FormatINR(amount decimal.Decimal) string {
	return inr.FormatMoneyDecimal(amount)
}
