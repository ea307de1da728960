package dto

import "github.com/shopspring/decimal"

type AppointmentItemRequest struct {
	ServiceID       *uint           `json:"serviceId"`
	ServiceName     string          `json:"serviceName" validate:"required"`
	DurationMinutes *int            `json:"duration_minutes" validate:"omitempty,min=0"`
	StaffID         *uint           `json:"staffId"`
	StaffName       *string         `json:"staffName"`
	Price           decimal.Decimal `json:"price"`
}

type CreateAppointmentRequest struct {
	CustomerID   *uint                    `json:"customerId"`
	CustomerName string                   `json:"customerName" validate:"required"`
	IsWalkIn     bool                     `json:"isWalkIn"`
	StartTime    string                   `json:"startTime" validate:"required"`
	Items        []AppointmentItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes        *string                  `json:"notes"`
}

type AppointmentFilter struct {
	From    string `form:"from" validate:"required"`
	To      string `form:"to" validate:"required"`
	StaffID *uint  `form:"staff_id"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Booked In-Progress Completed Cancelled"`
}

type AppointmentItemResponse struct {
	ServiceName     string          `json:"service_name"`
	DurationMinutes int             `json:"duration_minutes"`
	StaffName       *string         `json:"staff_name"`
	Price           decimal.Decimal `json:"price"`
}

type AppointmentResponse struct {
	ID           uint                      `json:"id"`
	CustomerID   *uint                     `json:"customer_id"`
	CustomerName string                    `json:"customer_name"`
	IsWalkIn     bool                      `json:"is_walk_in"`
	StartTime    string                    `json:"start_time"`
	EndTime      string                    `json:"end_time"`
	Status       string                    `json:"status"`
	Notes        *string                   `json:"notes"`
	Items        []AppointmentItemResponse `json:"items,omitempty"`
}
