package dto

import "github.com/shopspring/decimal"

type CustomerRequest struct {
	Name                       string  `json:"name" validate:"required"`
	Phone                      *string `json:"phone"`
	Gender                     *string `json:"gender"`
	DateOfBirth                *string `json:"date_of_birth"`
	PreferredStaffID           *uint   `json:"preferred_staff_id"`
	PreferredServiceID         *uint   `json:"preferred_service_id"`
	BirthdayReminderEnabled    bool    `json:"birthday_reminder_enabled"`
	AnniversaryDate            *string `json:"anniversary_date"`
	AnniversaryReminderEnabled bool    `json:"anniversary_reminder_enabled"`
}

type CustomerResponse struct {
	ID                         uint    `json:"id"`
	Name                       string  `json:"name"`
	Phone                      *string `json:"phone"`
	Gender                     *string `json:"gender"`
	DateOfBirth                *string `json:"date_of_birth"`
	LoyaltyPoints              int     `json:"loyalty_points"`
	BirthdayReminderEnabled    bool    `json:"birthday_reminder_enabled"`
	AnniversaryDate            *string `json:"anniversary_date"`
	AnniversaryReminderEnabled bool    `json:"anniversary_reminder_enabled"`
	CreatedAt                  string  `json:"created_at"`
}

// CustomerVisit is one row of a customer's visit history, read from the bill
// ledger.
type CustomerVisit struct {
	BillID      uint            `json:"bill_id"`
	BillDate    string          `json:"bill_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
