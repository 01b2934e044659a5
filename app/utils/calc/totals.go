package calc

import "github.com/shopspring/decimal"

// FlatShippingCost is the storewide shipping fee. Shipping is currently free.
var FlatShippingCost = decimal.Zero

func CalculateLineSubtotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// CalculateTotal keeps the order invariant total = subtotal + shipping.
func CalculateTotal(subtotal, shippingCost decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shippingCost).Round(2)
}
