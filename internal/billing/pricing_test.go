package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestPriceItems_SubtotalIsExactSum(t *testing.T) {
	items := []LineItem{
		{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(50), Quantity: intPtr(3)},
		{ServiceName: "Shave", UnitPrice: decimal.NewFromFloat(12.50), Quantity: intPtr(2)},
	}
	priced, subtotal, err := PriceItems(items)
	require.NoError(t, err)
	require.Len(t, priced, 2)
	assert.Equal(t, "150", priced[0].LineTotal.String())
	assert.Equal(t, "25", priced[1].LineTotal.String())
	assert.Equal(t, "175", subtotal.String())
}

func TestPriceItems_SubtotalIndependentOfOrder(t *testing.T) {
	a := LineItem{ServiceName: "Color", UnitPrice: decimal.NewFromFloat(99.99), Quantity: intPtr(1)}
	b := LineItem{ServiceName: "Spa", UnitPrice: decimal.NewFromFloat(0.01), Quantity: intPtr(7)}
	c := LineItem{ServiceName: "Trim", UnitPrice: decimal.NewFromInt(30)}

	_, s1, err := PriceItems([]LineItem{a, b, c})
	require.NoError(t, err)
	_, s2, err := PriceItems([]LineItem{c, a, b})
	require.NoError(t, err)
	assert.True(t, s1.Equal(s2))
}

func TestPriceItems_TwoIdenticalItems(t *testing.T) {
	// item with quantity 3, unitPrice 50 → line_total 150; two such items → 300
	item := LineItem{ServiceName: "Manicure", UnitPrice: decimal.NewFromInt(50), Quantity: intPtr(3)}
	_, subtotal, err := PriceItems([]LineItem{item, item})
	require.NoError(t, err)
	assert.Equal(t, "300", subtotal.String())
}

func TestPriceItems_QuantityDefaultsToOneWhenAbsent(t *testing.T) {
	priced, subtotal, err := PriceItems([]LineItem{
		{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(200)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, priced[0].Quantity)
	assert.Equal(t, "200", subtotal.String())
}

func TestPriceItems_ExplicitZeroQuantityFails(t *testing.T) {
	_, _, err := PriceItems([]LineItem{
		{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(200), Quantity: intPtr(0)},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.EqualError(t, err, "invalid quantity")
}

func TestPriceItems_NegativeQuantityFails(t *testing.T) {
	_, _, err := PriceItems([]LineItem{
		{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(200), Quantity: intPtr(-2)},
	})
	assert.EqualError(t, err, "invalid quantity")
}

func TestPriceItems_BlankServiceNameFails(t *testing.T) {
	_, _, err := PriceItems([]LineItem{
		{ServiceName: "   ", UnitPrice: decimal.NewFromInt(10)},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.EqualError(t, err, "service name required")
}

func TestPriceItems_NegativePriceFails(t *testing.T) {
	_, _, err := PriceItems([]LineItem{
		{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(-5)},
	})
	assert.EqualError(t, err, "invalid price")
}

func TestPriceItems_NegativeDurationFails(t *testing.T) {
	_, _, err := PriceItems([]LineItem{
		{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(10), DurationMinutes: intPtr(-1)},
	})
	assert.EqualError(t, err, "invalid duration")
}

func TestPriceItems_MissingDurationCoercesToZero(t *testing.T) {
	priced, _, err := PriceItems([]LineItem{
		{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, priced[0].DurationMinutes)
}

func TestPriceItems_TrimsNames(t *testing.T) {
	staff := "  Asha  "
	priced, _, err := PriceItems([]LineItem{
		{ServiceName: "  Haircut ", UnitPrice: decimal.NewFromInt(10), StaffName: &staff},
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut", priced[0].ServiceName)
	require.NotNil(t, priced[0].StaffName)
	assert.Equal(t, "Asha", *priced[0].StaffName)
}

func TestPriceItems_ZeroPriceIsAllowed(t *testing.T) {
	// Complimentary services carry a zero price but still appear on the bill.
	priced, subtotal, err := PriceItems([]LineItem{
		{ServiceName: "Consultation", UnitPrice: decimal.Zero, Quantity: intPtr(2)},
	})
	require.NoError(t, err)
	assert.True(t, priced[0].LineTotal.IsZero())
	assert.True(t, subtotal.IsZero())
}
