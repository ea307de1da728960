package repository

import (
	"context"

	"salondesk/internal/model"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *model.Service) error
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	List(ctx context.Context, includeInactive bool) ([]model.Service, error)
	Update(ctx context.Context, s *model.Service) error
	SoftDelete(ctx context.Context, id uint) error

	// Bill-of-materials links
	AddProductLink(ctx context.Context, link *model.ServiceProduct) error
	RemoveProductLink(ctx context.Context, linkID uint) error
	ListProductLinks(ctx context.Context, serviceID uint) ([]model.ServiceProduct, error)
	// ListProductLinksTx reads the links inside the billing transaction so
	// stock deduction sees a consistent bill of materials.
	ListProductLinksTx(tx *gorm.DB, serviceID uint) ([]model.ServiceProduct, error)

	DB() *gorm.DB
}

type serviceRepo struct{ db *gorm.DB }

func NewServiceRepository(db *gorm.DB) ServiceRepository { return &serviceRepo{db: db} }

func (r *serviceRepo) DB() *gorm.DB { return r.db }

func (r *serviceRepo) Create(ctx context.Context, s *model.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *serviceRepo) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *serviceRepo) List(ctx context.Context, includeInactive bool) ([]model.Service, error) {
	var services []model.Service
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepo) Update(ctx context.Context, s *model.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *serviceRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Service{}).
		Where("id = ?", id).Update("is_active", false).Error
}

func (r *serviceRepo) AddProductLink(ctx context.Context, link *model.ServiceProduct) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *serviceRepo) RemoveProductLink(ctx context.Context, linkID uint) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceProduct{}, linkID).Error
}

func (r *serviceRepo) ListProductLinks(ctx context.Context, serviceID uint) ([]model.ServiceProduct, error) {
	var links []model.ServiceProduct
	err := r.db.WithContext(ctx).Preload("Product").
		Where("service_id = ?", serviceID).Find(&links).Error
	return links, err
}

func (r *serviceRepo) ListProductLinksTx(tx *gorm.DB, serviceID uint) ([]model.ServiceProduct, error) {
	var links []model.ServiceProduct
	err := tx.Where("service_id = ?", serviceID).Find(&links).Error
	return links, err
}
