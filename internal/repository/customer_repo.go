package repository

import (
	"context"

	"salondesk/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uint) (*model.Customer, error)
	List(ctx context.Context, search string) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	SoftDelete(ctx context.Context, id uint) error

	// Used inside the billing transaction — callers must pass the tx instance.
	UpdateLoyaltyPointsTx(tx *gorm.DB, id uint, delta int) error

	// SetLoyaltyPoints overwrites the counter; used by the ledger rebuild routine.
	SetLoyaltyPoints(ctx context.Context, id uint, balance int) error

	DB() *gorm.DB
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) DB() *gorm.DB { return r.db }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *customerRepo) List(ctx context.Context, search string) ([]model.Customer, error) {
	var customers []model.Customer
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	err := q.Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", id).Update("is_active", false).Error
}

func (r *customerRepo) UpdateLoyaltyPointsTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.Customer{}).Where("id = ?", id).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", delta)).Error
}

func (r *customerRepo) SetLoyaltyPoints(ctx context.Context, id uint, balance int) error {
	return r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", id).Update("loyalty_points", balance).Error
}
