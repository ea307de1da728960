package model

// Setting is a key-value row for runtime business configuration.
// Known keys: gst_rate, loyalty_rate, salon_name, admin_pin (bcrypt hash).
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}
