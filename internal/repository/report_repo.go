package repository

import (
	"context"

	"salondesk/internal/dto"
	"salondesk/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportRepository holds the read-only aggregate queries behind the daily
// summary and cash closing reports. Everything is derived from the bill,
// payment and expense ledgers; nothing here writes.
type ReportRepository interface {
	RevenueForDate(ctx context.Context, date string) (decimal.Decimal, error)
	NetIncomeForDate(ctx context.Context, date string) (decimal.Decimal, error)
	CustomersServed(ctx context.Context, date string) (int64, error)
	TopServices(ctx context.Context, date string, limit int) ([]dto.ServiceUsage, error)
	StaffServiceCounts(ctx context.Context, date string) ([]dto.StaffServiceCount, error)
	IncomeByMode(ctx context.Context, date string) ([]dto.PaymentModeIncome, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) RevenueForDate(ctx context.Context, date string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("DATE(bill_date) = ?", date).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// NetIncomeForDate sums what was actually charged (net_amount). Overpayment
// is accepted without recording change, so summing payment rows would
// overstate the day's income.
func (r *reportRepo) NetIncomeForDate(ctx context.Context, date string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Select("COALESCE(SUM(net_amount), 0)").
		Where("DATE(bill_date) = ?", date).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// CustomersServed counts distinct registered customers; walk-in bills carry
// no customer id and are excluded.
func (r *reportRepo) CustomersServed(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Distinct("customer_id").
		Where("DATE(bill_date) = ? AND customer_id IS NOT NULL", date).
		Count(&count).Error
	return count, err
}

func (r *reportRepo) TopServices(ctx context.Context, date string, limit int) ([]dto.ServiceUsage, error) {
	var rows []dto.ServiceUsage
	err := r.db.WithContext(ctx).Model(&model.BillItem{}).
		Select("bill_items.service_name AS service_name, SUM(bill_items.quantity) AS usage_count, COALESCE(SUM(bill_items.line_total), 0) AS revenue").
		Joins("JOIN bills ON bills.id = bill_items.bill_id").
		Where("DATE(bills.bill_date) = ?", date).
		Group("bill_items.service_name").
		Order("usage_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) StaffServiceCounts(ctx context.Context, date string) ([]dto.StaffServiceCount, error) {
	var rows []dto.StaffServiceCount
	err := r.db.WithContext(ctx).Model(&model.BillItem{}).
		Select("bill_items.staff_name AS staff_name, SUM(bill_items.quantity) AS service_count").
		Joins("JOIN bills ON bills.id = bill_items.bill_id").
		Where("DATE(bills.bill_date) = ? AND bill_items.staff_name IS NOT NULL", date).
		Group("bill_items.staff_name").
		Order("service_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) IncomeByMode(ctx context.Context, date string) ([]dto.PaymentModeIncome, error) {
	var rows []dto.PaymentModeIncome
	err := r.db.WithContext(ctx).Model(&model.BillPayment{}).
		Select("bill_payments.mode AS mode, COALESCE(SUM(bill_payments.amount), 0) AS total").
		Joins("JOIN bills ON bills.id = bill_payments.bill_id").
		Where("DATE(bills.bill_date) = ?", date).
		Group("bill_payments.mode").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}
