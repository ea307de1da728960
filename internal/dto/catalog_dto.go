package dto

import "github.com/shopspring/decimal"

// ─── Services ────────────────────────────────────────────────────────────────

type ServiceRequest struct {
	Name            string          `json:"name" validate:"required"`
	Price           decimal.Decimal `json:"price" validate:"min=0"`
	DurationMinutes *int            `json:"duration_minutes" validate:"omitempty,min=0"`
}

type ServiceResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
}

// ServiceProductRequest links a product into a service's bill-of-materials.
type ServiceProductRequest struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

type ServiceProductResponse struct {
	ID          uint            `json:"id"`
	ServiceID   uint            `json:"service_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ─── Staff ───────────────────────────────────────────────────────────────────

type StaffRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

type StaffResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}
