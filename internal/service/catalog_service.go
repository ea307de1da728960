package service

import (
	"context"
	"errors"
	"time"

	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrStaffNotFound   = errors.New("staff not found")
)

// CatalogService manages the service menu, the staff roster, and the
// bill-of-materials links consumed by the billing transaction.
type CatalogService interface {
	CreateService(ctx context.Context, req dto.ServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, id uint) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context, includeInactive bool) ([]dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id uint, req dto.ServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id uint) error

	AddProductLink(ctx context.Context, serviceID uint, req dto.ServiceProductRequest) (*dto.ServiceProductResponse, error)
	RemoveProductLink(ctx context.Context, linkID uint) error
	ListProductLinks(ctx context.Context, serviceID uint) ([]dto.ServiceProductResponse, error)

	CreateStaff(ctx context.Context, req dto.StaffRequest) (*dto.StaffResponse, error)
	ListStaff(ctx context.Context, includeInactive bool) ([]dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, id uint, req dto.StaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id uint) error
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
	staffRepo   repository.StaffRepository
	productRepo repository.ProductRepository
}

func NewCatalogService(serviceRepo repository.ServiceRepository, staffRepo repository.StaffRepository, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo, staffRepo: staffRepo, productRepo: productRepo}
}

// ── Services ─────────────────────────────────────────────────────────────────

func (s *catalogService) CreateService(ctx context.Context, req dto.ServiceRequest) (*dto.ServiceResponse, error) {
	svc := model.Service{
		Name:     req.Name,
		Price:    req.Price,
		IsActive: true,
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if err := s.serviceRepo.Create(ctx, &svc); err != nil {
		return nil, err
	}
	return serviceToResponse(&svc), nil
}

func (s *catalogService) GetService(ctx context.Context, id uint) (*dto.ServiceResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	return serviceToResponse(svc), nil
}

func (s *catalogService) ListServices(ctx context.Context, includeInactive bool) ([]dto.ServiceResponse, error) {
	services, err := s.serviceRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, *serviceToResponse(&services[i]))
	}
	return out, nil
}

func (s *catalogService) UpdateService(ctx context.Context, id uint, req dto.ServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	svc.Name = req.Name
	svc.Price = req.Price
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return serviceToResponse(svc), nil
}

func (s *catalogService) DeleteService(ctx context.Context, id uint) error {
	if _, err := s.serviceRepo.FindByID(ctx, id); err != nil {
		return ErrServiceNotFound
	}
	return s.serviceRepo.SoftDelete(ctx, id)
}

// ── Bill-of-materials links ──────────────────────────────────────────────────

func (s *catalogService) AddProductLink(ctx context.Context, serviceID uint, req dto.ServiceProductRequest) (*dto.ServiceProductResponse, error) {
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		return nil, ErrServiceNotFound
	}
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if !req.Quantity.IsPositive() {
		return nil, errors.New("link quantity must be positive")
	}

	link := model.ServiceProduct{
		ServiceID: serviceID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := s.serviceRepo.AddProductLink(ctx, &link); err != nil {
		return nil, err
	}
	return &dto.ServiceProductResponse{
		ID:          link.ID,
		ServiceID:   link.ServiceID,
		ProductID:   link.ProductID,
		ProductName: product.Name,
		Quantity:    link.Quantity,
	}, nil
}

func (s *catalogService) RemoveProductLink(ctx context.Context, linkID uint) error {
	return s.serviceRepo.RemoveProductLink(ctx, linkID)
}

func (s *catalogService) ListProductLinks(ctx context.Context, serviceID uint) ([]dto.ServiceProductResponse, error) {
	links, err := s.serviceRepo.ListProductLinks(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceProductResponse, 0, len(links))
	for _, link := range links {
		name := ""
		if link.Product != nil {
			name = link.Product.Name
		}
		out = append(out, dto.ServiceProductResponse{
			ID:          link.ID,
			ServiceID:   link.ServiceID,
			ProductID:   link.ProductID,
			ProductName: name,
			Quantity:    link.Quantity,
		})
	}
	return out, nil
}

// ── Staff ────────────────────────────────────────────────────────────────────

func (s *catalogService) CreateStaff(ctx context.Context, req dto.StaffRequest) (*dto.StaffResponse, error) {
	st := model.Staff{Name: req.Name, Role: req.Role, IsActive: true}
	if err := s.staffRepo.Create(ctx, &st); err != nil {
		return nil, err
	}
	return staffToResponse(&st), nil
}

func (s *catalogService) ListStaff(ctx context.Context, includeInactive bool) ([]dto.StaffResponse, error) {
	staff, err := s.staffRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		out = append(out, *staffToResponse(&staff[i]))
	}
	return out, nil
}

func (s *catalogService) UpdateStaff(ctx context.Context, id uint, req dto.StaffRequest) (*dto.StaffResponse, error) {
	st, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStaffNotFound
	}
	st.Name = req.Name
	st.Role = req.Role
	if err := s.staffRepo.Update(ctx, st); err != nil {
		return nil, err
	}
	return staffToResponse(st), nil
}

func (s *catalogService) DeleteStaff(ctx context.Context, id uint) error {
	if _, err := s.staffRepo.FindByID(ctx, id); err != nil {
		return ErrStaffNotFound
	}
	return s.staffRepo.SoftDelete(ctx, id)
}

func serviceToResponse(svc *model.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		IsActive:        svc.IsActive,
	}
}

func staffToResponse(st *model.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:        st.ID,
		Name:      st.Name,
		Role:      st.Role,
		IsActive:  st.IsActive,
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
	}
}
