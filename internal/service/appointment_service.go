package service

import (
	"context"
	"errors"
	"time"

	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentService interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	List(ctx context.Context, filter dto.AppointmentFilter) ([]dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*dto.AppointmentResponse, error)
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

func (s *appointmentService) Create(ctx context.Context, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errors.New("invalid start time")
	}

	appt := model.Appointment{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		IsWalkIn:     req.IsWalkIn,
		StartTime:    start,
		Status:       model.AppointmentBooked,
		Notes:        req.Notes,
	}

	totalMinutes := 0
	for _, item := range req.Items {
		duration := 0
		if item.DurationMinutes != nil {
			duration = *item.DurationMinutes
		}
		totalMinutes += duration
		appt.Items = append(appt.Items, model.AppointmentService{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			DurationMinutes: duration,
			StaffID:         item.StaffID,
			StaffName:       item.StaffName,
			Price:           item.Price,
		})
	}
	appt.EndTime = start.Add(time.Duration(totalMinutes) * time.Minute)

	if err := s.repo.Create(ctx, &appt); err != nil {
		return nil, err
	}
	return appointmentToResponse(&appt), nil
}

func (s *appointmentService) Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	return appointmentToResponse(appt), nil
}

func (s *appointmentService) List(ctx context.Context, filter dto.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	from, err := time.Parse("2006-01-02", filter.From)
	if err != nil {
		return nil, errors.New("invalid from date")
	}
	to, err := time.Parse("2006-01-02", filter.To)
	if err != nil {
		return nil, errors.New("invalid to date")
	}
	// inclusive end date
	to = to.AddDate(0, 0, 1)

	appts, err := s.repo.ListBetween(ctx, from, to, filter.StaffID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, *appointmentToResponse(&appts[i]))
	}
	return out, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id uint, status string) (*dto.AppointmentResponse, error) {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	if appt.Status == model.AppointmentCancelled {
		return nil, errors.New("appointment is cancelled")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt.Status = status
	return appointmentToResponse(appt), nil
}

func appointmentToResponse(a *model.Appointment) *dto.AppointmentResponse {
	items := make([]dto.AppointmentItemResponse, 0, len(a.Items))
	for _, item := range a.Items {
		items = append(items, dto.AppointmentItemResponse{
			ServiceName:     item.ServiceName,
			DurationMinutes: item.DurationMinutes,
			StaffName:       item.StaffName,
			Price:           item.Price,
		})
	}
	return &dto.AppointmentResponse{
		ID:           a.ID,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		IsWalkIn:     a.IsWalkIn,
		StartTime:    a.StartTime.Format(time.RFC3339),
		EndTime:      a.EndTime.Format(time.RFC3339),
		Status:       a.Status,
		Notes:        a.Notes,
		Items:        items,
	}
}
