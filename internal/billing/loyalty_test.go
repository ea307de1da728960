package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveLoyalty_EarnIsFloored(t *testing.T) {
	// total 220 at 0.01 points per currency unit → floor(2.2) = 2
	r := ResolveLoyalty(decimal.NewFromInt(220), true, 0, decimal.NewFromFloat(0.01), 0)
	assert.Equal(t, 2, r.Earned)
	assert.Equal(t, 2, r.NewBalance)
}

func TestResolveLoyalty_NoAccrualWhenRateZero(t *testing.T) {
	r := ResolveLoyalty(decimal.NewFromInt(500), true, 10, decimal.Zero, 0)
	assert.Equal(t, 0, r.Earned)
	assert.Equal(t, 10, r.NewBalance)
}

func TestResolveLoyalty_RedeemCappedAtBalance(t *testing.T) {
	r := ResolveLoyalty(decimal.NewFromInt(100), true, 30, decimal.Zero, 80)
	assert.Equal(t, 30, r.Redeemed)
	assert.Equal(t, "30", r.RedemptionValue.String())
	assert.Equal(t, 0, r.NewBalance)
}

func TestResolveLoyalty_SpecExample(t *testing.T) {
	// balance 50, rate 0, redeem request 20, total 220 → redeemed 20, balance 30
	r := ResolveLoyalty(decimal.NewFromInt(220), true, 50, decimal.Zero, 20)
	assert.Equal(t, 0, r.Earned)
	assert.Equal(t, 20, r.Redeemed)
	assert.Equal(t, 30, r.NewBalance)
}

func TestResolveLoyalty_NothingWithoutCustomer(t *testing.T) {
	r := ResolveLoyalty(decimal.NewFromInt(1000), false, 0, decimal.NewFromInt(1), 500)
	assert.Equal(t, 0, r.Earned)
	assert.Equal(t, 0, r.Redeemed)
	assert.True(t, r.RedemptionValue.IsZero())
	assert.Equal(t, 0, r.NewBalance)
}

func TestResolveLoyalty_NegativeRequestTreatedAsZero(t *testing.T) {
	r := ResolveLoyalty(decimal.NewFromInt(100), true, 40, decimal.Zero, -5)
	assert.Equal(t, 0, r.Redeemed)
	assert.Equal(t, 40, r.NewBalance)
}

func TestResolveLoyalty_BalanceArithmeticExact(t *testing.T) {
	r := ResolveLoyalty(decimal.NewFromInt(350), true, 25, decimal.NewFromFloat(0.02), 10)
	// earned = floor(350*0.02) = 7; redeemed = 10; balance = 25+7-10 = 22
	assert.Equal(t, 7, r.Earned)
	assert.Equal(t, 10, r.Redeemed)
	assert.Equal(t, 22, r.NewBalance)
}
