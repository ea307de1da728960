package repository

import (
	"context"

	"salondesk/internal/dto"
	"salondesk/internal/model"

	"gorm.io/gorm"
)

// BillRepository defines the data access contract for the bill ledger.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type BillRepository interface {
	// Create inserts the bill with its items and payments — callers must pass
	// the tx instance so the whole sale commits or rolls back as one unit.
	Create(ctx context.Context, tx *gorm.DB, b *model.Bill) error
	FindByID(ctx context.Context, id uint) (*model.Bill, error)
	List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, int64, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]model.Bill, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type billRepo struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) BillRepository { return &billRepo{db: db} }

func (r *billRepo) DB() *gorm.DB { return r.db }

func (r *billRepo) Create(ctx context.Context, tx *gorm.DB, b *model.Bill) error {
	return tx.WithContext(ctx).Create(b).Error
}

func (r *billRepo) FindByID(ctx context.Context, id uint) (*model.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).Preload("Items").Preload("Payments").First(&b, id).Error
	return &b, err
}

func (r *billRepo) List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, int64, error) {
	var bills []model.Bill
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Bill{})

	if filter.Date != "" {
		q = q.Where("DATE(bill_date) = ?", filter.Date)
	} else {
		// Default: today
		q = q.Where("DATE(bill_date) = DATE('now', 'localtime')")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("bill_date DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepo) ListByCustomer(ctx context.Context, customerID uint) ([]model.Bill, error) {
	var bills []model.Bill
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("bill_date DESC").
		Find(&bills).Error
	return bills, err
}
