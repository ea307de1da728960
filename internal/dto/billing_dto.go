package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BillItemRequest is one raw line of a billing request. Quantity and
// DurationMinutes are pointers: absent quantity defaults to 1, absent
// duration to 0, but explicit invalid values are rejected by the pricing
// stage, not silently corrected.
type BillItemRequest struct {
	ServiceID       *uint           `json:"serviceId"`
	ServiceName     string          `json:"serviceName" validate:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DurationMinutes *int            `json:"duration_minutes"`
	Quantity        *int            `json:"quantity"`
	StaffID         *uint           `json:"staffId"`
	StaffName       *string         `json:"staffName"`
}

type PaymentRequest struct {
	Mode      string          `json:"mode"`
	Amount    decimal.Decimal `json:"amount"`
	Reference *string         `json:"reference"`
}

type CreateBillRequest struct {
	CustomerID   *uint             `json:"customerId"`
	CustomerName string            `json:"customerName" validate:"required"`
	Items        []BillItemRequest `json:"items" validate:"required,min=1,dive"`
	// GSTRate falls back to the stored gst_rate setting when omitted.
	GSTRate             *decimal.Decimal `json:"gstRate" validate:"omitempty,min=0"`
	DiscountAmount      decimal.Decimal  `json:"discountAmount"`
	Payments            []PaymentRequest `json:"payments"`
	LoyaltyRedeemPoints int              `json:"loyaltyRedeemPoints" validate:"min=0"`
}

// BillFilter is bound from the query string of GET /v1/bills.
type BillFilter struct {
	Date  string `form:"date"` // YYYY-MM-DD; empty = today
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// BillResponse is the summary returned by POST /v1/bills.
type BillResponse struct {
	ID           uint            `json:"id"`
	CustomerID   *uint           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	BillDate     string          `json:"bill_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	NetAmount    decimal.Decimal `json:"net_amount"`
}

type BillItemResponse struct {
	ServiceName     string          `json:"service_name"`
	StaffName       *string         `json:"staff_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DurationMinutes int             `json:"duration_minutes"`
	Quantity        int             `json:"quantity"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

type BillPaymentResponse struct {
	Mode      string          `json:"mode"`
	Amount    decimal.Decimal `json:"amount"`
	Reference *string         `json:"reference"`
}

// BillDetailResponse is the full projection for GET /v1/bills/:id.
type BillDetailResponse struct {
	ID                    uint            `json:"id"`
	CustomerID            *uint           `json:"customer_id"`
	CustomerName          string          `json:"customer_name"`
	BillDate              string          `json:"bill_date"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	DiscountAmount        decimal.Decimal `json:"discount_amount"`
	GSTRate               decimal.Decimal `json:"gst_rate"`
	GSTAmount             decimal.Decimal `json:"gst_amount"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	NetAmount             decimal.Decimal `json:"net_amount"`
	Status                string          `json:"status"`
	LoyaltyPointsEarned   int             `json:"loyalty_points_earned"`
	LoyaltyPointsRedeemed int             `json:"loyalty_points_redeemed"`
	Items                 []BillItemResponse    `json:"items"`
	Payments              []BillPaymentResponse `json:"payments"`
}

type BillListResponse struct {
	Data  []BillResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// LoyaltyRebuildResponse reports the outcome of recomputing a customer's
// point balance from the loyalty ledger.
type LoyaltyRebuildResponse struct {
	CustomerID      uint `json:"customer_id"`
	PreviousBalance int  `json:"previous_balance"`
	RebuiltBalance  int  `json:"rebuilt_balance"`
}
