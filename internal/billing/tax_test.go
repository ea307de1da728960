package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyDiscountAndTax_Basic(t *testing.T) {
	// subtotal 200, no discount, 10% → taxable 200, tax 20, total 220
	b := ApplyDiscountAndTax(decimal.NewFromInt(200), decimal.Zero, decimal.NewFromInt(10))
	assert.Equal(t, "200", b.TaxableAmount.String())
	assert.Equal(t, "20", b.TaxAmount.String())
	assert.Equal(t, "220", b.TotalAmount.String())
}

func TestApplyDiscountAndTax_DiscountReducesTaxable(t *testing.T) {
	b := ApplyDiscountAndTax(decimal.NewFromInt(100), decimal.NewFromInt(25), decimal.NewFromInt(18))
	assert.Equal(t, "75", b.TaxableAmount.String())
	assert.Equal(t, "13.5", b.TaxAmount.String())
	assert.Equal(t, "88.5", b.TotalAmount.String())
}

func TestApplyDiscountAndTax_NegativeDiscountTreatedAsZero(t *testing.T) {
	b := ApplyDiscountAndTax(decimal.NewFromInt(100), decimal.NewFromInt(-40), decimal.Zero)
	assert.True(t, b.DiscountAmount.IsZero())
	assert.Equal(t, "100", b.TaxableAmount.String())
}

func TestApplyDiscountAndTax_DiscountLargerThanSubtotalIsAbsorbed(t *testing.T) {
	// Permissive by design: the zero floor absorbs the excess.
	b := ApplyDiscountAndTax(decimal.NewFromInt(50), decimal.NewFromInt(80), decimal.NewFromInt(10))
	assert.True(t, b.TaxableAmount.IsZero())
	assert.True(t, b.TaxAmount.IsZero())
	assert.True(t, b.TotalAmount.IsZero())
	// The recorded discount keeps its requested magnitude.
	assert.Equal(t, "80", b.DiscountAmount.String())
}

func TestApplyDiscountAndTax_ZeroRate(t *testing.T) {
	b := ApplyDiscountAndTax(decimal.NewFromFloat(123.45), decimal.Zero, decimal.Zero)
	assert.True(t, b.TaxAmount.IsZero())
	assert.Equal(t, "123.45", b.TotalAmount.String())
}

func TestApplyDiscountAndTax_NoPrematureRounding(t *testing.T) {
	// 5% of 33.33 = 1.6665 — kept exact; rounding belongs to payment comparison.
	b := ApplyDiscountAndTax(decimal.NewFromFloat(33.33), decimal.Zero, decimal.NewFromInt(5))
	assert.Equal(t, "1.66650", b.TaxAmount.StringFixed(5))
}
