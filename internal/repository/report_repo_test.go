package repository

import (
	"context"
	"testing"
	"time"

	"salondesk/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newReportTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or each pooled conn gets its own :memory: database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Bill{}, &model.BillItem{}, &model.BillPayment{}))
	return db
}

func seedBill(t *testing.T, db *gorm.DB, customerID *uint, date time.Time, net int64, payments ...model.BillPayment) {
	t.Helper()
	b := model.Bill{
		CustomerID:   customerID,
		CustomerName: "Test",
		BillDate:     date,
		Subtotal:     decimal.NewFromInt(net),
		TotalAmount:  decimal.NewFromInt(net),
		NetAmount:    decimal.NewFromInt(net),
		Status:       "FINAL",
		Payments:     payments,
	}
	require.NoError(t, db.Create(&b).Error)
}

func TestCustomersServed_DistinctNonNull(t *testing.T) {
	db := newReportTestDB(t)
	repo := NewReportRepository(db)
	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	c1, c2 := uint(1), uint(2)
	seedBill(t, db, &c1, day, 100)
	seedBill(t, db, &c1, day.Add(2*time.Hour), 50) // same customer, second visit
	seedBill(t, db, nil, day, 80)                  // walk-in
	seedBill(t, db, &c2, day.AddDate(0, 0, 1), 60) // other day

	served, err := repo.CustomersServed(context.Background(), "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, int64(1), served)

	seedBill(t, db, &c2, day.Add(time.Hour), 40)
	served, err = repo.CustomersServed(context.Background(), "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, int64(2), served)
}

func TestNetIncomeForDate_IgnoresOverpayment(t *testing.T) {
	db := newReportTestDB(t)
	repo := NewReportRepository(db)
	day := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)

	// 120 tendered against a net of 100; the day's income is still 150.
	seedBill(t, db, nil, day, 100, model.BillPayment{Mode: "Cash", Amount: decimal.NewFromInt(120)})
	seedBill(t, db, nil, day, 50, model.BillPayment{Mode: "Card", Amount: decimal.NewFromInt(50)})
	seedBill(t, db, nil, day.AddDate(0, 0, -1), 999) // other day

	income, err := repo.NetIncomeForDate(context.Background(), "2026-03-14")
	require.NoError(t, err)
	assert.True(t, income.Equal(decimal.NewFromInt(150)), "income = %s", income)
}
