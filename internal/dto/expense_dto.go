package dto

import "github.com/shopspring/decimal"

type ExpenseRequest struct {
	Date        string          `json:"date" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

type ExpenseResponse struct {
	ID          uint            `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type ExpenseListResponse struct {
	From  string            `json:"from"`
	To    string            `json:"to"`
	Items []ExpenseResponse `json:"items"`
	Total decimal.Decimal   `json:"total"`
}
