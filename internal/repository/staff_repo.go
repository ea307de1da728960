package repository

import (
	"context"

	"salondesk/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	FindByID(ctx context.Context, id uint) (*model.Staff, error)
	List(ctx context.Context, includeInactive bool) ([]model.Staff, error)
	Update(ctx context.Context, s *model.Staff) error
	SoftDelete(ctx context.Context, id uint) error
}

type staffRepo struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) StaffRepository { return &staffRepo{db: db} }

func (r *staffRepo) Create(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *staffRepo) FindByID(ctx context.Context, id uint) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *staffRepo) List(ctx context.Context, includeInactive bool) ([]model.Staff, error) {
	var staff []model.Staff
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&staff).Error
	return staff, err
}

func (r *staffRepo) Update(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *staffRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Staff{}).
		Where("id = ?", id).Update("is_active", false).Error
}
