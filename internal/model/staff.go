package model

import "time"

type Staff struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"index;not null"`
	Role      string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName overrides GORM's default pluralization (staffs → staff).
func (Staff) TableName() string { return "staff" }
