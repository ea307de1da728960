package dto

import "github.com/shopspring/decimal"

// ServiceUsage is one row of the daily top-services breakdown.
type ServiceUsage struct {
	ServiceName string          `json:"service_name"`
	UsageCount  int64           `json:"usage_count"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// StaffServiceCount is one row of the daily per-staff breakdown.
type StaffServiceCount struct {
	StaffName    string `json:"staff_name"`
	ServiceCount int64  `json:"service_count"`
}

type DailySummaryResponse struct {
	Date               string              `json:"date"`
	TotalRevenue       decimal.Decimal     `json:"total_revenue"`
	CustomersServed    int64               `json:"customers_served"`
	TopServices        []ServiceUsage      `json:"top_services"`
	StaffServiceCounts []StaffServiceCount `json:"staff_service_counts"`
}

// PaymentModeIncome is one row of the cash-closing income-by-mode breakdown.
type PaymentModeIncome struct {
	Mode  string          `json:"mode"`
	Total decimal.Decimal `json:"total"`
}

type DailyCashClosingResponse struct {
	Date          string              `json:"date"`
	IncomeByMode  []PaymentModeIncome `json:"income_by_mode"`
	TotalIncome   decimal.Decimal     `json:"total_income"`
	TotalExpenses decimal.Decimal     `json:"total_expenses"`
	NetCash       decimal.Decimal     `json:"net_cash"`
}
