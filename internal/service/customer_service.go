package service

import (
	"context"
	"errors"
	"time"

	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerService interface {
	Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, id uint) (*dto.CustomerResponse, error)
	List(ctx context.Context, search string) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id uint, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uint) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c := model.Customer{
		Name:                       req.Name,
		Phone:                      req.Phone,
		Gender:                     req.Gender,
		DateOfBirth:                req.DateOfBirth,
		PreferredStaffID:           req.PreferredStaffID,
		PreferredServiceID:         req.PreferredServiceID,
		BirthdayReminderEnabled:    req.BirthdayReminderEnabled,
		AnniversaryDate:            req.AnniversaryDate,
		AnniversaryReminderEnabled: req.AnniversaryReminderEnabled,
		IsActive:                   true,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return customerToResponse(&c), nil
}

func (s *customerService) Get(ctx context.Context, id uint) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customerToResponse(c), nil
}

func (s *customerService) List(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return out, nil
}

func (s *customerService) Update(ctx context.Context, id uint, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	c.Name = req.Name
	c.Phone = req.Phone
	c.Gender = req.Gender
	c.DateOfBirth = req.DateOfBirth
	c.PreferredStaffID = req.PreferredStaffID
	c.PreferredServiceID = req.PreferredServiceID
	c.BirthdayReminderEnabled = req.BirthdayReminderEnabled
	c.AnniversaryDate = req.AnniversaryDate
	c.AnniversaryReminderEnabled = req.AnniversaryReminderEnabled
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrCustomerNotFound
	}
	return s.repo.SoftDelete(ctx, id)
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:                         c.ID,
		Name:                       c.Name,
		Phone:                      c.Phone,
		Gender:                     c.Gender,
		DateOfBirth:                c.DateOfBirth,
		LoyaltyPoints:              c.LoyaltyPoints,
		BirthdayReminderEnabled:    c.BirthdayReminderEnabled,
		AnniversaryDate:            c.AnniversaryDate,
		AnniversaryReminderEnabled: c.AnniversaryReminderEnabled,
		CreatedAt:                  c.CreatedAt.Format(time.RFC3339),
	}
}
