package billing

import "github.com/shopspring/decimal"

// LoyaltyResult captures the points movement of one transaction.
// Redemption value uses the fixed 1 point = 1 currency-unit exchange rate.
type LoyaltyResult struct {
	Earned          int
	Redeemed        int
	RedemptionValue decimal.Decimal
	NewBalance      int
}

// ResolveLoyalty computes points earned and redeemed for a bill total.
// Points are earned only when a customer is attached and the accrual rate is
// positive: earned = floor(total * rate). Redemption is capped at the
// customer's current balance and impossible without a customer.
func ResolveLoyalty(total decimal.Decimal, hasCustomer bool, currentBalance int, accrualRate decimal.Decimal, requestedPoints int) LoyaltyResult {
	if !hasCustomer {
		return LoyaltyResult{RedemptionValue: decimal.Zero}
	}

	earned := 0
	if accrualRate.IsPositive() {
		earned = int(total.Mul(accrualRate).Floor().IntPart())
	}

	requested := requestedPoints
	if requested < 0 {
		requested = 0
	}
	redeemed := requested
	if redeemed > currentBalance {
		redeemed = currentBalance
	}

	return LoyaltyResult{
		Earned:          earned,
		Redeemed:        redeemed,
		RedemptionValue: decimal.NewFromInt(int64(redeemed)),
		NewBalance:      currentBalance + earned - redeemed,
	}
}
