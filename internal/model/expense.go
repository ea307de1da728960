package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          uint            `gorm:"primaryKey"`
	Date        string          `gorm:"type:varchar(10);index;not null"` // YYYY-MM-DD
	Category    string          `gorm:"not null"`
	Description *string
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
}
