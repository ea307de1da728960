package billing

import "github.com/shopspring/decimal"

// TaxBreakdown is the output of the discount & tax stage. No rounding is
// applied here — currency rounding happens only at payment-comparison time.
type TaxBreakdown struct {
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// ApplyDiscountAndTax applies a manual discount and a percent tax rate to a
// subtotal. A negative discount is treated as zero. A discount larger than
// the subtotal is absorbed by the zero floor, not rejected.
func ApplyDiscountAndTax(subtotal, discount, taxRatePct decimal.Decimal) TaxBreakdown {
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if taxRatePct.IsNegative() {
		taxRatePct = decimal.Zero
	}

	taxable := subtotal.Sub(discount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax := taxable.Mul(taxRatePct).Div(decimal.NewFromInt(100))

	return TaxBreakdown{
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxAmount:      tax,
		TotalAmount:    taxable.Add(tax),
	}
}
