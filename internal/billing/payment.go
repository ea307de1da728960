package billing

import "github.com/shopspring/decimal"

// DefaultPaymentMode is used when a billing request carries no payments.
const DefaultPaymentMode = "Cash"

// Tender is one payment offered against a bill.
type Tender struct {
	Mode      string
	Amount    decimal.Decimal
	Reference *string
}

// ReconcilePayments validates tendered payments against the net amount due.
//
// An empty tender list synthesizes a single Cash payment for the full net
// amount. Non-positive entries are silently dropped from the paid total (they
// are excluded, not rejected). The comparison is done at cent precision to
// avoid floating-point equality failures:
//
//	round(paid * 100) >= round(net * 100)
//
// Returns the accepted tenders, or ErrInsufficientPayment.
func ReconcilePayments(netAmount decimal.Decimal, tendered []Tender) ([]Tender, error) {
	effective := tendered
	if len(effective) == 0 {
		effective = []Tender{{Mode: DefaultPaymentMode, Amount: netAmount}}
	}

	accepted := make([]Tender, 0, len(effective))
	paid := decimal.Zero
	for _, t := range effective {
		if !t.Amount.IsPositive() {
			continue
		}
		mode := t.Mode
		if mode == "" {
			mode = DefaultPaymentMode
		}
		accepted = append(accepted, Tender{Mode: mode, Amount: t.Amount, Reference: t.Reference})
		paid = paid.Add(t.Amount)
	}

	if paid.Round(2).LessThan(netAmount.Round(2)) {
		return nil, ErrInsufficientPayment
	}
	return accepted, nil
}
