package repository

import (
	"context"
	"time"

	"salondesk/internal/model"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) error
	FindByID(ctx context.Context, id uint) (*model.Appointment, error)
	ListBetween(ctx context.Context, from, to time.Time, staffID *uint) ([]model.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type appointmentRepo struct{ db *gorm.DB }

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *appointmentRepo) FindByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).Preload("Items").First(&a, id).Error
	return &a, err
}

func (r *appointmentRepo) ListBetween(ctx context.Context, from, to time.Time, staffID *uint) ([]model.Appointment, error) {
	var appts []model.Appointment
	q := r.db.WithContext(ctx).Preload("Items").
		Where("start_time >= ? AND start_time < ?", from, to)
	if staffID != nil {
		q = q.Where("id IN (?)", r.db.Model(&model.AppointmentService{}).
			Select("appointment_id").Where("staff_id = ?", *staffID))
	}
	err := q.Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("id = ?", id).Update("status", status).Error
}
