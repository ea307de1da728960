package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment statuses.
const (
	AppointmentBooked     = "Booked"
	AppointmentInProgress = "In-Progress"
	AppointmentCompleted  = "Completed"
	AppointmentCancelled  = "Cancelled"
)

type Appointment struct {
	ID           uint      `gorm:"primaryKey"`
	CustomerID   *uint     `gorm:"index"`
	CustomerName string    `gorm:"not null"`
	IsWalkIn     bool      `gorm:"not null;default:false"`
	StartTime    time.Time `gorm:"index;not null"`
	EndTime      time.Time `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Booked'"`
	Notes        *string
	CreatedAt    time.Time

	Items []AppointmentService `gorm:"foreignKey:AppointmentID"`
}

// AppointmentService carries the same denormalized name snapshots as BillItem.
type AppointmentService struct {
	ID              uint  `gorm:"primaryKey"`
	AppointmentID   uint  `gorm:"index;not null"`
	ServiceID       *uint
	ServiceName     string `gorm:"not null"`
	DurationMinutes int    `gorm:"not null;default:0"`
	StaffID         *uint
	StaffName       *string
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}
