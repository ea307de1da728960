// Package billing holds the pure calculation stages of the billing
// transaction: pricing, discount/tax, loyalty, payment reconciliation, and
// service-consumption stock resolution. No stage performs I/O; the
// orchestrator in internal/service composes them and owns persistence.
package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one raw line of a billing request, before validation.
// Duration and Quantity are pointers so "entirely absent" is distinguishable
// from an explicit zero: a missing quantity defaults to 1, a missing duration
// to 0, but an explicit non-positive quantity fails.
type LineItem struct {
	ServiceID       *uint
	ServiceName     string
	UnitPrice       decimal.Decimal
	DurationMinutes *int
	Quantity        *int
	StaffID         *uint
	StaffName       *string
}

// PricedItem is a validated, normalized line with its computed total.
type PricedItem struct {
	ServiceID       *uint
	ServiceName     string
	StaffID         *uint
	StaffName       *string
	UnitPrice       decimal.Decimal
	DurationMinutes int
	Quantity        int
	LineTotal       decimal.Decimal
}

// PriceItems validates and prices a list of raw line items.
// Returns the normalized items and the exact subtotal Σ(unit_price * quantity).
func PriceItems(items []LineItem) ([]PricedItem, decimal.Decimal, error) {
	priced := make([]PricedItem, 0, len(items))
	subtotal := decimal.Zero

	for _, item := range items {
		name := strings.TrimSpace(item.ServiceName)
		if name == "" {
			return nil, decimal.Zero, NewValidationError("service name required")
		}
		if item.UnitPrice.IsNegative() {
			return nil, decimal.Zero, NewValidationError("invalid price")
		}

		duration := 0
		if item.DurationMinutes != nil {
			if *item.DurationMinutes < 0 {
				return nil, decimal.Zero, NewValidationError("invalid duration")
			}
			duration = *item.DurationMinutes
		}

		quantity := 1
		if item.Quantity != nil {
			if *item.Quantity <= 0 {
				return nil, decimal.Zero, NewValidationError("invalid quantity")
			}
			quantity = *item.Quantity
		}

		var staffName *string
		if item.StaffName != nil {
			if trimmed := strings.TrimSpace(*item.StaffName); trimmed != "" {
				staffName = &trimmed
			}
		}

		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		subtotal = subtotal.Add(lineTotal)

		priced = append(priced, PricedItem{
			ServiceID:       item.ServiceID,
			ServiceName:     name,
			StaffID:         item.StaffID,
			StaffName:       staffName,
			UnitPrice:       item.UnitPrice,
			DurationMinutes: duration,
			Quantity:        quantity,
			LineTotal:       lineTotal,
		})
	}

	return priced, subtotal, nil
}
