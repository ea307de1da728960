package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStockUsage_ScalesByItemQuantity(t *testing.T) {
	// service links product at 2 units/use; item quantity 3 → 6 units OUT
	usages := ResolveStockUsage([]ProductRequirement{
		{ProductID: 7, Quantity: decimal.NewFromInt(2)},
	}, 3)
	require.Len(t, usages, 1)
	assert.Equal(t, uint(7), usages[0].ProductID)
	assert.Equal(t, "6", usages[0].Quantity.String())
}

func TestResolveStockUsage_FractionalConsumption(t *testing.T) {
	usages := ResolveStockUsage([]ProductRequirement{
		{ProductID: 1, Quantity: decimal.NewFromFloat(0.05)},
	}, 4)
	require.Len(t, usages, 1)
	assert.Equal(t, "0.2", usages[0].Quantity.String())
}

func TestResolveStockUsage_ZeroLinkProducesNothing(t *testing.T) {
	usages := ResolveStockUsage([]ProductRequirement{
		{ProductID: 1, Quantity: decimal.Zero},
		{ProductID: 2, Quantity: decimal.NewFromInt(1)},
	}, 2)
	require.Len(t, usages, 1)
	assert.Equal(t, uint(2), usages[0].ProductID)
}

func TestResolveStockUsage_NoLinks(t *testing.T) {
	assert.Empty(t, ResolveStockUsage(nil, 5))
}
