package infra

import (
	"fmt"

	"salondesk/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the SQLite store and runs AutoMigrate for every table.
// The file lives next to the application so the backup routine can copy it
// wholesale; WAL mode keeps readers unblocked during the billing transaction.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; keep the pool at one connection so GORM
	// transactions never deadlock against themselves.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Service{},
		&model.ServiceProduct{},
		&model.Staff{},
		&model.Supplier{},
		&model.Product{},
		&model.StockMovement{},
		&model.Bill{},
		&model.BillItem{},
		&model.BillPayment{},
		&model.LoyaltyTransaction{},
		&model.Appointment{},
		&model.AppointmentService{},
		&model.Expense{},
		&model.Setting{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
