package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a consumable or retail item. StockQuantity is the denormalized
// running balance of the stock-movement ledger, updated in the same
// transaction as each movement row.
type Product struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"index;not null"`
	Category      *string
	SupplierID    *uint   `gorm:"index"`
	SKU           *string `gorm:"column:sku"`
	Unit          *string `gorm:"type:varchar(20)"`
	CostPrice     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	SalePrice     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	StockQuantity decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	MinStock      decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	ExpiryDate    *string          `gorm:"type:varchar(10)"`
	IsActive      bool             `gorm:"not null;default:true"`
	CreatedAt     time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}

type Supplier struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"index;not null"`
	Phone     *string `gorm:"type:varchar(30)"`
	Email     *string
	Address   *string
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}
