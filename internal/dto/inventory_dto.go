package dto

import "github.com/shopspring/decimal"

// ─── Products ────────────────────────────────────────────────────────────────

type ProductRequest struct {
	Name       string           `json:"name" validate:"required"`
	Category   *string          `json:"category"`
	SupplierID *uint            `json:"supplierId"`
	SKU        *string          `json:"sku"`
	Unit       *string          `json:"unit"`
	CostPrice  *decimal.Decimal `json:"costPrice"`
	SalePrice  *decimal.Decimal `json:"salePrice"`
	MinStock   *decimal.Decimal `json:"minStock"`
	ExpiryDate *string          `json:"expiryDate"`
}

type ProductResponse struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	Category      *string          `json:"category"`
	SupplierID    *uint            `json:"supplier_id"`
	SKU           *string          `json:"sku"`
	Unit          *string          `json:"unit"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	StockQuantity decimal.Decimal  `json:"stock_quantity"`
	MinStock      decimal.Decimal  `json:"min_stock"`
	ExpiryDate    *string          `json:"expiry_date"`
	IsActive      bool             `json:"is_active"`
}

// ─── Stock movements ─────────────────────────────────────────────────────────

// StockMoveRequest records a manual IN/OUT adjustment.
type StockMoveRequest struct {
	ProductID uint            `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=IN OUT"`
	Reason    *string         `json:"reason"`
}

type StockMovementResponse struct {
	ID               uint            `json:"id"`
	ProductID        uint            `json:"product_id"`
	ProductName      string          `json:"product_name"`
	MovementDate     string          `json:"movement_date"`
	Quantity         decimal.Decimal `json:"quantity"`
	Type             string          `json:"type"`
	Reason           *string         `json:"reason"`
	RelatedServiceID *uint           `json:"related_service_id"`
}

type StockMovementFilter struct {
	ProductID *uint  `form:"product_id"`
	From      string `form:"from"`
	To        string `form:"to"`
	Limit     int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// LowStockAlert flags products at or below their minimum stock level.
type LowStockAlert struct {
	ProductID     uint            `json:"product_id"`
	Name          string          `json:"name"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinStock      decimal.Decimal `json:"min_stock"`
}

// StockRebuildResponse reports the outcome of recomputing a product's stock
// counter from the movement ledger.
type StockRebuildResponse struct {
	ProductID        uint            `json:"product_id"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	RebuiltQuantity  decimal.Decimal `json:"rebuilt_quantity"`
}

// ─── Suppliers ───────────────────────────────────────────────────────────────

type SupplierRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

type SupplierResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}
