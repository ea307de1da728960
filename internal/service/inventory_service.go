package service

import (
	"context"
	"errors"
	"time"

	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// InventoryService manages products, suppliers, manual stock movements, and
// the counter rebuild routine. Automatic service-usage deduction happens
// inside the billing transaction, not here.
type InventoryService interface {
	CreateProduct(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id uint) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uint, req dto.ProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uint) error

	RecordMovement(ctx context.Context, req dto.StockMoveRequest) (*dto.StockMovementResponse, error)
	ListMovements(ctx context.Context, filter dto.StockMovementFilter) ([]dto.StockMovementResponse, error)
	LowStockAlerts(ctx context.Context) ([]dto.LowStockAlert, error)
	RebuildStockQuantity(ctx context.Context, productID uint) (*dto.StockRebuildResponse, error)

	CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error)
	UpdateSupplier(ctx context.Context, id uint, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, id uint) error
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	stockRepo    repository.StockMovementRepository
	supplierRepo repository.SupplierRepository
}

func NewInventoryService(productRepo repository.ProductRepository, stockRepo repository.StockMovementRepository, supplierRepo repository.SupplierRepository) InventoryService {
	return &inventoryService{productRepo: productRepo, stockRepo: stockRepo, supplierRepo: supplierRepo}
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *inventoryService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p := model.Product{
		Name:       req.Name,
		Category:   req.Category,
		SupplierID: req.SupplierID,
		SKU:        req.SKU,
		Unit:       req.Unit,
		CostPrice:  req.CostPrice,
		SalePrice:  req.SalePrice,
		ExpiryDate: req.ExpiryDate,
		IsActive:   true,
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if err := s.productRepo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return productToResponse(&p), nil
}

func (s *inventoryService) GetProduct(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

func (s *inventoryService) ListProducts(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error) {
	products, err := s.productRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id uint, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	p.Name = req.Name
	p.Category = req.Category
	p.SupplierID = req.SupplierID
	p.SKU = req.SKU
	p.Unit = req.Unit
	p.CostPrice = req.CostPrice
	p.SalePrice = req.SalePrice
	p.ExpiryDate = req.ExpiryDate
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.SoftDelete(ctx, id)
}

// ── Stock movements ──────────────────────────────────────────────────────────

// RecordMovement applies a manual adjustment: ledger row plus counter update
// in one transaction, same discipline as the billing flow.
func (s *inventoryService) RecordMovement(ctx context.Context, req dto.StockMoveRequest) (*dto.StockMovementResponse, error) {
	p, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if !req.Quantity.IsPositive() {
		return nil, errors.New("movement quantity must be positive")
	}
	if req.Type != model.StockIn && req.Type != model.StockOut {
		return nil, errors.New("movement type must be IN or OUT")
	}

	mov := model.StockMovement{
		ProductID:    req.ProductID,
		MovementDate: time.Now(),
		Quantity:     req.Quantity,
		Type:         req.Type,
		Reason:       req.Reason,
	}
	delta := req.Quantity
	if req.Type == model.StockOut {
		delta = delta.Neg()
	}

	txErr := runTx(ctx, s.productRepo.DB(), func(tx *gorm.DB) error {
		if err := s.stockRepo.CreateTx(tx, &mov); err != nil {
			return err
		}
		return s.productRepo.AdjustStockTx(tx, req.ProductID, delta)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.StockMovementResponse{
		ID:           mov.ID,
		ProductID:    mov.ProductID,
		ProductName:  p.Name,
		MovementDate: mov.MovementDate.Format(time.RFC3339),
		Quantity:     mov.Quantity,
		Type:         mov.Type,
		Reason:       mov.Reason,
	}, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.StockMovementFilter) ([]dto.StockMovementResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	moves, err := s.stockRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(moves))
	for _, m := range moves {
		name := ""
		if m.Product != nil {
			name = m.Product.Name
		}
		out = append(out, dto.StockMovementResponse{
			ID:               m.ID,
			ProductID:        m.ProductID,
			ProductName:      name,
			MovementDate:     m.MovementDate.Format(time.RFC3339),
			Quantity:         m.Quantity,
			Type:             m.Type,
			Reason:           m.Reason,
			RelatedServiceID: m.RelatedServiceID,
		})
	}
	return out, nil
}

func (s *inventoryService) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlert, error) {
	products, err := s.productRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockAlert, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockAlert{
			ProductID:     p.ID,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			MinStock:      p.MinStock,
		})
	}
	return out, nil
}

// RebuildStockQuantity recomputes a product's counter from the movement
// ledger and overwrites the denormalized value.
func (s *inventoryService) RebuildStockQuantity(ctx context.Context, productID uint) (*dto.StockRebuildResponse, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	balance, err := s.stockRepo.LedgerBalance(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.SetStockQuantity(ctx, productID, balance); err != nil {
		return nil, err
	}
	return &dto.StockRebuildResponse{
		ProductID:        productID,
		PreviousQuantity: p.StockQuantity,
		RebuiltQuantity:  balance,
	}, nil
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (s *inventoryService) CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup := model.Supplier{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		IsActive: true,
	}
	if err := s.supplierRepo.Create(ctx, &sup); err != nil {
		return nil, err
	}
	return supplierToResponse(&sup), nil
}

func (s *inventoryService) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

func (s *inventoryService) UpdateSupplier(ctx context.Context, id uint, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}
	sup.Name = req.Name
	sup.Phone = req.Phone
	sup.Email = req.Email
	sup.Address = req.Address
	if err := s.supplierRepo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return supplierToResponse(sup), nil
}

func (s *inventoryService) DeleteSupplier(ctx context.Context, id uint) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return errors.New("supplier not found")
	}
	return s.supplierRepo.SoftDelete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		SupplierID:    p.SupplierID,
		SKU:           p.SKU,
		Unit:          p.Unit,
		CostPrice:     p.CostPrice,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		MinStock:      p.MinStock,
		ExpiryDate:    p.ExpiryDate,
		IsActive:      p.IsActive,
	}
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Phone:   s.Phone,
		Email:   s.Email,
		Address: s.Address,
	}
}
