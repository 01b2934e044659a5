package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateLineSubtotal(t *testing.T) {
	price := decimal.NewFromFloat(499.50)
	assert.True(t, decimal.NewFromFloat(1498.50).Equal(CalculateLineSubtotal(price, 3)))
	assert.True(t, decimal.Zero.Equal(CalculateLineSubtotal(price, 0)))
}

func TestCalculateTotal(t *testing.T) {
	subtotal := decimal.NewFromFloat(1498.50)
	shipping := decimal.NewFromInt(49)

	total := CalculateTotal(subtotal, shipping)
	assert.True(t, subtotal.Add(shipping).Equal(total))
}

func TestCalculateTotalWithFreeShipping(t *testing.T) {
	subtotal := decimal.NewFromFloat(999.99)
	assert.True(t, subtotal.Equal(CalculateTotal(subtotal, FlatShippingCost)))
}
