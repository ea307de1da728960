package repository

import (
	"context"

	"salondesk/internal/dto"
	"salondesk/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StockMovementRepository interface {
	// CreateTx inserts a movement row inside the caller's transaction so the
	// ledger and the product counter commit together.
	CreateTx(tx *gorm.DB, m *model.StockMovement) error
	List(ctx context.Context, filter dto.StockMovementFilter) ([]model.StockMovement, error)

	// LedgerBalance recomputes the net quantity for a product as sum(IN) - sum(OUT).
	LedgerBalance(ctx context.Context, productID uint) (decimal.Decimal, error)

	DB() *gorm.DB
}

type stockMovementRepo struct{ db *gorm.DB }

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) DB() *gorm.DB { return r.db }

func (r *stockMovementRepo) CreateTx(tx *gorm.DB, m *model.StockMovement) error {
	return tx.Create(m).Error
}

func (r *stockMovementRepo) List(ctx context.Context, filter dto.StockMovementFilter) ([]model.StockMovement, error) {
	var moves []model.StockMovement
	q := r.db.WithContext(ctx).Preload("Product")

	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}
	if filter.From != "" {
		q = q.Where("DATE(movement_date) >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("DATE(movement_date) <= ?", filter.To)
	}

	err := q.Order("movement_date DESC").Limit(filter.Limit).Find(&moves).Error
	return moves, err
}

func (r *stockMovementRepo) LedgerBalance(ctx context.Context, productID uint) (decimal.Decimal, error) {
	var balance decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.StockMovement{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN quantity ELSE -quantity END), 0)", model.StockIn).
		Where("product_id = ?", productID).
		Scan(&balance).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !balance.Valid {
		return decimal.Zero, nil
	}
	return balance.Decimal, nil
}
