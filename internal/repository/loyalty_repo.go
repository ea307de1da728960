package repository

import (
	"context"

	"salondesk/internal/model"

	"gorm.io/gorm"
)

type LoyaltyRepository interface {
	// CreateTx inserts a ledger row inside the caller's transaction so the
	// ledger and the customer's points counter commit together.
	CreateTx(tx *gorm.DB, t *model.LoyaltyTransaction) error
	ListByCustomer(ctx context.Context, customerID uint) ([]model.LoyaltyTransaction, error)

	// LedgerBalance recomputes a customer's balance as sum(EARN) - sum(REDEEM).
	LedgerBalance(ctx context.Context, customerID uint) (int, error)

	DB() *gorm.DB
}

type loyaltyRepo struct{ db *gorm.DB }

func NewLoyaltyRepository(db *gorm.DB) LoyaltyRepository { return &loyaltyRepo{db: db} }

func (r *loyaltyRepo) DB() *gorm.DB { return r.db }

func (r *loyaltyRepo) CreateTx(tx *gorm.DB, t *model.LoyaltyTransaction) error {
	return tx.Create(t).Error
}

func (r *loyaltyRepo) ListByCustomer(ctx context.Context, customerID uint) ([]model.LoyaltyTransaction, error) {
	var txs []model.LoyaltyTransaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *loyaltyRepo) LedgerBalance(ctx context.Context, customerID uint) (int, error) {
	var balance int
	err := r.db.WithContext(ctx).Model(&model.LoyaltyTransaction{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN points ELSE -points END), 0)", model.LoyaltyEarn).
		Where("customer_id = ?", customerID).
		Scan(&balance).Error
	return balance, err
}
