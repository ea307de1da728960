package service

import (
	"context"
	"errors"

	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseService interface {
	Create(ctx context.Context, req dto.ExpenseRequest) (*dto.ExpenseResponse, error)
	Update(ctx context.Context, id uint, req dto.ExpenseRequest) (*dto.ExpenseResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, from, to string) (*dto.ExpenseListResponse, error)
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) Create(ctx context.Context, req dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, errors.New("expense amount must be positive")
	}
	e := model.Expense{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		return nil, err
	}
	return expenseToResponse(&e), nil
}

func (s *expenseService) Update(ctx context.Context, id uint, req dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}
	if !req.Amount.IsPositive() {
		return nil, errors.New("expense amount must be positive")
	}
	e.Date = req.Date
	e.Category = req.Category
	e.Description = req.Description
	e.Amount = req.Amount
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrExpenseNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *expenseService) List(ctx context.Context, from, to string) (*dto.ExpenseListResponse, error) {
	expenses, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	total := decimal.Zero
	for i := range expenses {
		items = append(items, *expenseToResponse(&expenses[i]))
		total = total.Add(expenses[i].Amount)
	}
	return &dto.ExpenseListResponse{From: from, To: to, Items: items, Total: total}, nil
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
	}
}
