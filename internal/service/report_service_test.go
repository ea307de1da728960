package service

import (
	"context"
	"testing"

	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	revenue     decimal.Decimal
	netIncome   decimal.Decimal
	served      int64
	topServices []dto.ServiceUsage
	staffCounts []dto.StaffServiceCount
	byMode      []dto.PaymentModeIncome
}

func (r *stubReportRepo) RevenueForDate(_ context.Context, _ string) (decimal.Decimal, error) {
	return r.revenue, nil
}
func (r *stubReportRepo) NetIncomeForDate(_ context.Context, _ string) (decimal.Decimal, error) {
	return r.netIncome, nil
}
func (r *stubReportRepo) CustomersServed(_ context.Context, _ string) (int64, error) {
	return r.served, nil
}
func (r *stubReportRepo) TopServices(_ context.Context, _ string, _ int) ([]dto.ServiceUsage, error) {
	return r.topServices, nil
}
func (r *stubReportRepo) StaffServiceCounts(_ context.Context, _ string) ([]dto.StaffServiceCount, error) {
	return r.staffCounts, nil
}
func (r *stubReportRepo) IncomeByMode(_ context.Context, _ string) ([]dto.PaymentModeIncome, error) {
	return r.byMode, nil
}

var _ repository.ReportRepository = (*stubReportRepo)(nil)

type stubExpenseRepo struct {
	sum decimal.Decimal
}

func (r *stubExpenseRepo) Create(_ context.Context, _ *model.Expense) error { return nil }
func (r *stubExpenseRepo) Update(_ context.Context, _ *model.Expense) error { return nil }
func (r *stubExpenseRepo) Delete(_ context.Context, _ uint) error           { return nil }
func (r *stubExpenseRepo) FindByID(_ context.Context, _ uint) (*model.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) ListBetween(_ context.Context, _, _ string) ([]model.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) SumForDate(_ context.Context, _ string) (decimal.Decimal, error) {
	return r.sum, nil
}

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

// An overpaid cash bill tenders 120 against a net of 100; the closing must
// report income 100, not the payment-row sum.
func TestDailyCashClosing_IncomeFromNetAmounts(t *testing.T) {
	reports := &stubReportRepo{
		netIncome: decimal.NewFromInt(100),
		byMode: []dto.PaymentModeIncome{
			{Mode: "Cash", Total: decimal.NewFromInt(120)},
		},
	}
	svc := NewReportService(reports, &stubExpenseRepo{sum: decimal.NewFromInt(30)})

	resp, err := svc.DailyCashClosing(context.Background(), "2026-03-14")
	require.NoError(t, err)

	assert.True(t, resp.TotalIncome.Equal(decimal.NewFromInt(100)), "income = %s", resp.TotalIncome)
	assert.True(t, resp.NetCash.Equal(decimal.NewFromInt(70)), "net cash = %s", resp.NetCash)
	require.Len(t, resp.IncomeByMode, 1)
	assert.True(t, resp.IncomeByMode[0].Total.Equal(decimal.NewFromInt(120)))
}
