package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is one finalized sale. Rows are append-only: created once inside the
// billing transaction, never mutated or deleted. CustomerName is a snapshot at
// creation time so the ledger survives customer deletion.
//
// Amount invariants:
//
//	taxable    = max(subtotal - discount_amount, 0)
//	gst_amount = taxable * gst_rate / 100
//	total      = taxable + gst_amount
//	net        = max(total - redeemed points value, 0)
type Bill struct {
	ID                    uint      `gorm:"primaryKey"`
	CustomerID            *uint     `gorm:"index"`
	CustomerName          string    `gorm:"not null"`
	BillDate              time.Time `gorm:"index;not null"`
	Subtotal              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GSTRate               decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0;column:gst_rate"`
	GSTAmount             decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:gst_amount"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetAmount             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status                string          `gorm:"type:varchar(20);not null;default:'FINAL'"`
	LoyaltyPointsEarned   int             `gorm:"not null;default:0"`
	LoyaltyPointsRedeemed int             `gorm:"not null;default:0"`
	CreatedAt             time.Time

	Items    []BillItem    `gorm:"foreignKey:BillID"`
	Payments []BillPayment `gorm:"foreignKey:BillID"`
}

// BillItem is one priced line within a bill. ServiceName and StaffName are
// snapshots — never a live join. Invariant: line_total = unit_price * quantity.
type BillItem struct {
	ID              uint    `gorm:"primaryKey"`
	BillID          uint    `gorm:"index;not null"`
	ServiceID       *uint   `gorm:"index"`
	ServiceName     string  `gorm:"not null"`
	StaffID         *uint
	StaffName       *string
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DurationMinutes int             `gorm:"not null;default:0"`
	Quantity        int             `gorm:"not null;default:1"`
	LineTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// BillPayment is one tender against a bill. The sum of a bill's payments is
// >= the bill's net amount at cent precision.
type BillPayment struct {
	ID        uint            `gorm:"primaryKey"`
	BillID    uint            `gorm:"index;not null"`
	Mode      string          `gorm:"type:varchar(30);not null"` // e.g. Cash | Card | Wallet
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Reference *string
}
