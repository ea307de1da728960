package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry for work performed on a customer.
type Service struct {
	ID              uint            `gorm:"primaryKey"`
	Name            string          `gorm:"index;not null"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DurationMinutes int             `gorm:"not null;default:0"`
	IsActive        bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time
}

// ServiceProduct is the bill-of-materials link: how much of a product one unit
// of a service consumes. Quantity may be fractional (e.g. 0.05 L of dye).
type ServiceProduct struct {
	ID        uint            `gorm:"primaryKey"`
	ServiceID uint            `gorm:"index;not null"`
	ProductID uint            `gorm:"index;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,3);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
