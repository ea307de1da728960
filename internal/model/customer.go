package model

import "time"

// Customer is a salon client. LoyaltyPoints is the denormalized running balance
// of the loyalty ledger — the single source of truth for "redeemable now".
// It is mutated only inside the billing transaction, in lockstep with the
// corresponding LoyaltyTransaction rows.
type Customer struct {
	ID                         uint    `gorm:"primaryKey"`
	Name                       string  `gorm:"index;not null"`
	Phone                      *string `gorm:"type:varchar(30)"`
	Gender                     *string `gorm:"type:varchar(20)"`
	DateOfBirth                *string `gorm:"type:varchar(10)"` // YYYY-MM-DD
	PreferredStaffID           *uint
	PreferredServiceID         *uint
	LoyaltyPoints              int  `gorm:"not null;default:0"`
	BirthdayReminderEnabled    bool `gorm:"not null;default:false"`
	AnniversaryDate            *string
	AnniversaryReminderEnabled bool `gorm:"not null;default:false"`
	IsActive                   bool `gorm:"not null;default:true"`
	CreatedAt                  time.Time
}
