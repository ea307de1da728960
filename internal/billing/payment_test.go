package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcilePayments_EmptyListSynthesizesCash(t *testing.T) {
	accepted, err := ReconcilePayments(decimal.NewFromInt(200), nil)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "Cash", accepted[0].Mode)
	assert.Equal(t, "200", accepted[0].Amount.String())
}

func TestReconcilePayments_ZeroNetWithNoPaymentsProducesNoRows(t *testing.T) {
	// The synthesized Cash tender for a zero net amount is itself non-positive
	// and therefore dropped; zero paid covers zero due.
	accepted, err := ReconcilePayments(decimal.Zero, nil)
	require.NoError(t, err)
	assert.Empty(t, accepted)
}

func TestReconcilePayments_ShortfallFails(t *testing.T) {
	_, err := ReconcilePayments(decimal.NewFromInt(100), []Tender{
		{Mode: "Cash", Amount: decimal.NewFromInt(40)},
		{Mode: "Card", Amount: decimal.NewFromInt(30)},
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}

func TestReconcilePayments_SplitPaymentsCoveringNet(t *testing.T) {
	accepted, err := ReconcilePayments(decimal.NewFromInt(100), []Tender{
		{Mode: "Cash", Amount: decimal.NewFromInt(60)},
		{Mode: "Card", Amount: decimal.NewFromInt(40)},
	})
	require.NoError(t, err)
	assert.Len(t, accepted, 2)
}

func TestReconcilePayments_NonPositiveEntriesSilentlyDropped(t *testing.T) {
	accepted, err := ReconcilePayments(decimal.NewFromInt(50), []Tender{
		{Mode: "Cash", Amount: decimal.NewFromInt(-10)},
		{Mode: "Wallet", Amount: decimal.Zero},
		{Mode: "Card", Amount: decimal.NewFromInt(50)},
	})
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "Card", accepted[0].Mode)
}

func TestReconcilePayments_DroppedEntriesCanCauseShortfall(t *testing.T) {
	_, err := ReconcilePayments(decimal.NewFromInt(50), []Tender{
		{Mode: "Cash", Amount: decimal.NewFromInt(-50)},
		{Mode: "Card", Amount: decimal.NewFromInt(20)},
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}

func TestReconcilePayments_CentPrecisionComparison(t *testing.T) {
	// 66.66 + 33.34 covers 99.999… style nets once both sides round to cents.
	net := decimal.NewFromFloat(99.995)
	accepted, err := ReconcilePayments(net, []Tender{
		{Mode: "Cash", Amount: decimal.NewFromFloat(66.66)},
		{Mode: "Card", Amount: decimal.NewFromFloat(33.34)},
	})
	require.NoError(t, err)
	assert.Len(t, accepted, 2)

	// A half-cent short of the rounded net still fails.
	_, err = ReconcilePayments(net, []Tender{
		{Mode: "Cash", Amount: decimal.NewFromFloat(99.99)},
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}

func TestReconcilePayments_OverpaymentAccepted(t *testing.T) {
	accepted, err := ReconcilePayments(decimal.NewFromInt(80), []Tender{
		{Mode: "Cash", Amount: decimal.NewFromInt(100)},
	})
	require.NoError(t, err)
	assert.Len(t, accepted, 1)
}

func TestReconcilePayments_BlankModeDefaultsToCash(t *testing.T) {
	accepted, err := ReconcilePayments(decimal.NewFromInt(10), []Tender{
		{Amount: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cash", accepted[0].Mode)
}
