package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StockIn  = "IN"
	StockOut = "OUT"

	StockReasonServiceUsage = "SERVICE_USAGE"
)

// StockMovement records every inventory delta: automatic service-usage
// consumption out of the billing transaction, or a manual adjustment.
// Quantity is an unsigned magnitude; Type carries the direction.
// Movements are never modified or deleted.
type StockMovement struct {
	ID               uint            `gorm:"primaryKey"`
	ProductID        uint            `gorm:"index;not null"`
	MovementDate     time.Time       `gorm:"index;not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Type             string          `gorm:"type:varchar(5);not null"` // IN | OUT
	Reason           *string
	RelatedServiceID *uint
	RelatedBillItemID *uint
	CreatedAt        time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
