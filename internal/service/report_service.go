package service

import (
	"context"

	"salondesk/internal/dto"
	"salondesk/internal/repository"
)

const topServicesLimit = 10

// ReportService derives the daily summary and cash closing from the bill,
// payment and expense ledgers. Read-only.
type ReportService interface {
	DailySummary(ctx context.Context, date string) (*dto.DailySummaryResponse, error)
	DailyCashClosing(ctx context.Context, date string) (*dto.DailyCashClosingResponse, error)
}

type reportService struct {
	reportRepo  repository.ReportRepository
	expenseRepo repository.ExpenseRepository
}

func NewReportService(reportRepo repository.ReportRepository, expenseRepo repository.ExpenseRepository) ReportService {
	return &reportService{reportRepo: reportRepo, expenseRepo: expenseRepo}
}

func (s *reportService) DailySummary(ctx context.Context, date string) (*dto.DailySummaryResponse, error) {
	revenue, err := s.reportRepo.RevenueForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	served, err := s.reportRepo.CustomersServed(ctx, date)
	if err != nil {
		return nil, err
	}
	topServices, err := s.reportRepo.TopServices(ctx, date, topServicesLimit)
	if err != nil {
		return nil, err
	}
	staffCounts, err := s.reportRepo.StaffServiceCounts(ctx, date)
	if err != nil {
		return nil, err
	}
	return &dto.DailySummaryResponse{
		Date:               date,
		TotalRevenue:       revenue,
		CustomersServed:    served,
		TopServices:        topServices,
		StaffServiceCounts: staffCounts,
	}, nil
}

func (s *reportService) DailyCashClosing(ctx context.Context, date string) (*dto.DailyCashClosingResponse, error) {
	income, err := s.reportRepo.IncomeByMode(ctx, date)
	if err != nil {
		return nil, err
	}
	// Total income comes from the bills' net amounts, not the tendered
	// payments: tenders may exceed net when change isn't recorded.
	totalIncome, err := s.reportRepo.NetIncomeForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.SumForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &dto.DailyCashClosingResponse{
		Date:          date,
		IncomeByMode:  income,
		TotalIncome:   totalIncome,
		TotalExpenses: expenses,
		NetCash:       totalIncome.Sub(expenses),
	}, nil
}
