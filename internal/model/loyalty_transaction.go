package model

import "time"

const (
	LoyaltyEarn   = "EARN"
	LoyaltyRedeem = "REDEEM"
)

// LoyaltyTransaction is an append-only ledger entry for a points movement.
// The customer's loyalty_points counter is updated in the same transaction
// that inserts these rows so the two can never drift under normal operation.
type LoyaltyTransaction struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"index;not null"`
	BillID     *uint  `gorm:"index"`
	Type       string `gorm:"type:varchar(10);not null"` // EARN | REDEEM
	Points     int    `gorm:"not null"`                  // always positive; Type carries the sign
	CreatedAt  time.Time
}
