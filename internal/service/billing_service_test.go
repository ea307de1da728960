package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"salondesk/internal/billing"
	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubBillRepo struct {
	bills  map[uint]*model.Bill
	nextID uint
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{bills: make(map[uint]*model.Bill), nextID: 1}
}

func (r *stubBillRepo) DB() *gorm.DB { return nil }

func (r *stubBillRepo) Create(_ context.Context, _ *gorm.DB, b *model.Bill) error {
	b.ID = r.nextID
	r.nextID++
	for i := range b.Items {
		b.Items[i].ID = r.nextID
		b.Items[i].BillID = b.ID
		r.nextID++
	}
	for i := range b.Payments {
		b.Payments[i].ID = r.nextID
		b.Payments[i].BillID = b.ID
		r.nextID++
	}
	cloned := *b
	r.bills[b.ID] = &cloned
	return nil
}

func (r *stubBillRepo) FindByID(_ context.Context, id uint) (*model.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return b, nil
}

func (r *stubBillRepo) List(_ context.Context, filter dto.BillFilter) ([]model.Bill, int64, error) {
	var out []model.Bill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *stubBillRepo) ListByCustomer(_ context.Context, customerID uint) ([]model.Bill, error) {
	var out []model.Bill
	for _, b := range r.bills {
		if b.CustomerID != nil && *b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ repository.BillRepository = (*stubBillRepo)(nil)

type stubCustomerRepo struct {
	customers map[uint]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uint]*model.Customer)}
}

func (r *stubCustomerRepo) DB() *gorm.DB { return nil }

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uint) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ string) ([]model.Customer, error) {
	return nil, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) SoftDelete(_ context.Context, id uint) error { return nil }

func (r *stubCustomerRepo) UpdateLoyaltyPointsTx(_ *gorm.DB, id uint, delta int) error {
	c, ok := r.customers[id]
	if !ok {
		return errors.New("record not found")
	}
	c.LoyaltyPoints += delta
	return nil
}

func (r *stubCustomerRepo) SetLoyaltyPoints(_ context.Context, id uint, balance int) error {
	c, ok := r.customers[id]
	if !ok {
		return errors.New("record not found")
	}
	c.LoyaltyPoints = balance
	return nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

type stubServiceRepo struct {
	links map[uint][]model.ServiceProduct // serviceID -> BOM
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{links: make(map[uint][]model.ServiceProduct)}
}

func (r *stubServiceRepo) DB() *gorm.DB                                        { return nil }
func (r *stubServiceRepo) Create(_ context.Context, _ *model.Service) error    { return nil }
func (r *stubServiceRepo) Update(_ context.Context, _ *model.Service) error    { return nil }
func (r *stubServiceRepo) SoftDelete(_ context.Context, _ uint) error          { return nil }
func (r *stubServiceRepo) FindByID(_ context.Context, _ uint) (*model.Service, error) {
	return nil, errors.New("record not found")
}
func (r *stubServiceRepo) List(_ context.Context, _ bool) ([]model.Service, error) { return nil, nil }
func (r *stubServiceRepo) AddProductLink(_ context.Context, link *model.ServiceProduct) error {
	r.links[link.ServiceID] = append(r.links[link.ServiceID], *link)
	return nil
}
func (r *stubServiceRepo) RemoveProductLink(_ context.Context, _ uint) error { return nil }
func (r *stubServiceRepo) ListProductLinks(_ context.Context, serviceID uint) ([]model.ServiceProduct, error) {
	return r.links[serviceID], nil
}
func (r *stubServiceRepo) ListProductLinksTx(_ *gorm.DB, serviceID uint) ([]model.ServiceProduct, error) {
	return r.links[serviceID], nil
}

var _ repository.ServiceRepository = (*stubServiceRepo)(nil)

type stubProductRepo struct {
	stock map[uint]decimal.Decimal
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{stock: make(map[uint]decimal.Decimal)}
}

func (r *stubProductRepo) DB() *gorm.DB                                     { return nil }
func (r *stubProductRepo) Create(_ context.Context, _ *model.Product) error { return nil }
func (r *stubProductRepo) Update(_ context.Context, _ *model.Product) error { return nil }
func (r *stubProductRepo) SoftDelete(_ context.Context, _ uint) error       { return nil }
func (r *stubProductRepo) FindByID(_ context.Context, _ uint) (*model.Product, error) {
	return nil, errors.New("record not found")
}
func (r *stubProductRepo) List(_ context.Context, _ bool) ([]model.Product, error) { return nil, nil }
func (r *stubProductRepo) LowStock(_ context.Context) ([]model.Product, error)     { return nil, nil }
func (r *stubProductRepo) AdjustStockTx(_ *gorm.DB, id uint, delta decimal.Decimal) error {
	r.stock[id] = r.stock[id].Add(delta)
	return nil
}
func (r *stubProductRepo) SetStockQuantity(_ context.Context, id uint, qty decimal.Decimal) error {
	r.stock[id] = qty
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubStockRepo struct {
	movements []model.StockMovement
}

func (r *stubStockRepo) DB() *gorm.DB { return nil }
func (r *stubStockRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}
func (r *stubStockRepo) List(_ context.Context, _ dto.StockMovementFilter) ([]model.StockMovement, error) {
	return r.movements, nil
}
func (r *stubStockRepo) LedgerBalance(_ context.Context, productID uint) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if m.Type == model.StockIn {
			sum = sum.Add(m.Quantity)
		} else {
			sum = sum.Sub(m.Quantity)
		}
	}
	return sum, nil
}

var _ repository.StockMovementRepository = (*stubStockRepo)(nil)

type stubLoyaltyRepo struct {
	rows []model.LoyaltyTransaction
}

func (r *stubLoyaltyRepo) DB() *gorm.DB { return nil }
func (r *stubLoyaltyRepo) CreateTx(_ *gorm.DB, t *model.LoyaltyTransaction) error {
	r.rows = append(r.rows, *t)
	return nil
}
func (r *stubLoyaltyRepo) ListByCustomer(_ context.Context, customerID uint) ([]model.LoyaltyTransaction, error) {
	var out []model.LoyaltyTransaction
	for _, row := range r.rows {
		if row.CustomerID == customerID {
			out = append(out, row)
		}
	}
	return out, nil
}
func (r *stubLoyaltyRepo) LedgerBalance(_ context.Context, customerID uint) (int, error) {
	balance := 0
	for _, row := range r.rows {
		if row.CustomerID != customerID {
			continue
		}
		if row.Type == model.LoyaltyEarn {
			balance += row.Points
		} else {
			balance -= row.Points
		}
	}
	return balance, nil
}

var _ repository.LoyaltyRepository = (*stubLoyaltyRepo)(nil)

type stubSettingsRepo struct {
	values map[string]string
}

func (r *stubSettingsRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", errors.New("record not found")
	}
	return v, nil
}
func (r *stubSettingsRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}
func (r *stubSettingsRepo) All(_ context.Context) ([]model.Setting, error) { return nil, nil }

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

// ── Fixture ──────────────────────────────────────────────────────────────────

type billingFixture struct {
	bills     *stubBillRepo
	customers *stubCustomerRepo
	services  *stubServiceRepo
	products  *stubProductRepo
	stock     *stubStockRepo
	loyalty   *stubLoyaltyRepo
	settings  *stubSettingsRepo
	svc       BillingService
}

func newBillingFixture() *billingFixture {
	f := &billingFixture{
		bills:     newStubBillRepo(),
		customers: newStubCustomerRepo(),
		services:  newStubServiceRepo(),
		products:  newStubProductRepo(),
		stock:     &stubStockRepo{},
		loyalty:   &stubLoyaltyRepo{},
		settings:  &stubSettingsRepo{values: map[string]string{}},
	}
	f.svc = NewBillingService(f.bills, f.customers, f.services, f.products, f.stock, f.loyalty, f.settings, nil)
	return f
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCreateBill_FullFlowWithLoyalty(t *testing.T) {
	f := newBillingFixture()
	f.settings.values[SettingGSTRate] = "10"
	f.settings.values[SettingLoyaltyRate] = "0.1"
	f.customers.customers[7] = &model.Customer{ID: 7, Name: "Asha", LoyaltyPoints: 50, CreatedAt: time.Now()}

	resp, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerID:   uintPtr(7),
		CustomerName: "Asha",
		Items: []dto.BillItemRequest{
			{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(100)},
			{ServiceName: "Hair Spa", UnitPrice: decimal.NewFromInt(100)},
		},
		Payments:            []dto.PaymentRequest{{Mode: "Cash", Amount: decimal.NewFromInt(200)}},
		LoyaltyRedeemPoints: 20,
	})
	require.NoError(t, err)

	// subtotal 200, GST 10% → total 220, minus 20 redeemed points → net 200
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(220)), "total = %s", resp.TotalAmount)
	assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(200)), "net = %s", resp.NetAmount)

	stored := f.bills.bills[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, 22, stored.LoyaltyPointsEarned) // floor(220 * 0.1)
	assert.Equal(t, 20, stored.LoyaltyPointsRedeemed)
	assert.Len(t, stored.Items, 2)
	assert.Len(t, stored.Payments, 1)

	// counter moved in lockstep with the ledger: 50 + 22 - 20
	assert.Equal(t, 52, f.customers.customers[7].LoyaltyPoints)
	require.Len(t, f.loyalty.rows, 2)
	assert.Equal(t, model.LoyaltyEarn, f.loyalty.rows[0].Type)
	assert.Equal(t, 22, f.loyalty.rows[0].Points)
	assert.Equal(t, model.LoyaltyRedeem, f.loyalty.rows[1].Type)
	assert.Equal(t, 20, f.loyalty.rows[1].Points)
}

func TestCreateBill_InsufficientPaymentWritesNothing(t *testing.T) {
	f := newBillingFixture()
	f.customers.customers[1] = &model.Customer{ID: 1, Name: "Ravi", LoyaltyPoints: 10}

	_, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerID:   uintPtr(1),
		CustomerName: "Ravi",
		Items: []dto.BillItemRequest{
			{ServiceName: "Beard Trim", UnitPrice: decimal.NewFromInt(100)},
		},
		Payments: []dto.PaymentRequest{
			{Mode: "Cash", Amount: decimal.NewFromInt(40)},
			{Mode: "Card", Amount: decimal.NewFromInt(30)},
		},
	})
	require.ErrorIs(t, err, billing.ErrInsufficientPayment)

	assert.Empty(t, f.bills.bills)
	assert.Empty(t, f.loyalty.rows)
	assert.Empty(t, f.stock.movements)
	assert.Equal(t, 10, f.customers.customers[1].LoyaltyPoints)
}

func TestCreateBill_ValidationFailureWritesNothing(t *testing.T) {
	f := newBillingFixture()

	_, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Walk-in",
		Items: []dto.BillItemRequest{
			{ServiceName: "   ", UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.Error(t, err)
	assert.True(t, billing.IsValidationError(err))
	assert.Empty(t, f.bills.bills)
}

func TestCreateBill_WhitespaceCustomerNameRejected(t *testing.T) {
	f := newBillingFixture()

	_, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "   ",
		Items: []dto.BillItemRequest{
			{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.Error(t, err)
	assert.True(t, billing.IsValidationError(err))
	assert.Empty(t, f.bills.bills)
}

func TestCreateBill_TrimsCustomerName(t *testing.T) {
	f := newBillingFixture()

	resp, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "  Asha  ",
		Items: []dto.BillItemRequest{
			{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", f.bills.bills[resp.ID].CustomerName)
}

func TestCreateBill_SynthesizesCashPayment(t *testing.T) {
	f := newBillingFixture()

	resp, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Walk-in",
		Items: []dto.BillItemRequest{
			{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(150)},
		},
	})
	require.NoError(t, err)

	stored := f.bills.bills[resp.ID]
	require.Len(t, stored.Payments, 1)
	assert.Equal(t, billing.DefaultPaymentMode, stored.Payments[0].Mode)
	assert.True(t, stored.Payments[0].Amount.Equal(decimal.NewFromInt(150)))
}

func TestCreateBill_DeductsStockFromBillOfMaterials(t *testing.T) {
	f := newBillingFixture()
	f.products.stock[3] = decimal.NewFromInt(10)
	f.products.stock[4] = decimal.RequireFromString("1.0")
	f.services.links[5] = []model.ServiceProduct{
		{ServiceID: 5, ProductID: 3, Quantity: decimal.NewFromInt(2)},
		{ServiceID: 5, ProductID: 4, Quantity: decimal.RequireFromString("0.05")},
	}

	_, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Walk-in",
		Items: []dto.BillItemRequest{
			{ServiceID: uintPtr(5), ServiceName: "Coloring", UnitPrice: decimal.NewFromInt(500), Quantity: intPtr(2)},
		},
	})
	require.NoError(t, err)

	// 2 units sold: product 3 drops by 4, product 4 by 0.1
	assert.True(t, f.products.stock[3].Equal(decimal.NewFromInt(6)), "stock = %s", f.products.stock[3])
	assert.True(t, f.products.stock[4].Equal(decimal.RequireFromString("0.9")), "stock = %s", f.products.stock[4])

	require.Len(t, f.stock.movements, 2)
	for _, m := range f.stock.movements {
		assert.Equal(t, model.StockOut, m.Type)
		require.NotNil(t, m.Reason)
		assert.Equal(t, model.StockReasonServiceUsage, *m.Reason)
		require.NotNil(t, m.RelatedServiceID)
		assert.Equal(t, uint(5), *m.RelatedServiceID)
	}
}

func TestCreateBill_CatalogFreeItemTouchesNoStock(t *testing.T) {
	f := newBillingFixture()

	_, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Walk-in",
		Items: []dto.BillItemRequest{
			{ServiceName: "Custom package", UnitPrice: decimal.NewFromInt(300)},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, f.stock.movements)
}

func TestCreateBill_UnknownCustomerDisablesLoyalty(t *testing.T) {
	f := newBillingFixture()
	f.settings.values[SettingLoyaltyRate] = "0.1"

	resp, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerID:          uintPtr(99),
		CustomerName:        "Ghost",
		Items:               []dto.BillItemRequest{{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(100)}},
		LoyaltyRedeemPoints: 50,
	})
	require.NoError(t, err)

	stored := f.bills.bills[resp.ID]
	assert.Nil(t, stored.CustomerID)
	assert.Equal(t, "Ghost", stored.CustomerName)
	assert.Zero(t, stored.LoyaltyPointsEarned)
	assert.Zero(t, stored.LoyaltyPointsRedeemed)
	assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, f.loyalty.rows)
}

func TestCreateBill_RequestRateOverridesSetting(t *testing.T) {
	f := newBillingFixture()
	f.settings.values[SettingGSTRate] = "18"

	rate := decimal.NewFromInt(5)
	resp, err := f.svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Walk-in",
		Items:        []dto.BillItemRequest{{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(100)}},
		GSTRate:      &rate,
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(105)), "total = %s", resp.TotalAmount)
}

func TestCreateBill_NoIdempotence(t *testing.T) {
	f := newBillingFixture()
	req := dto.CreateBillRequest{
		CustomerName: "Walk-in",
		Items:        []dto.BillItemRequest{{ServiceName: "Haircut", UnitPrice: decimal.NewFromInt(100)}},
	}

	first, err := f.svc.CreateBill(context.Background(), req)
	require.NoError(t, err)
	second, err := f.svc.CreateBill(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.bills.bills, 2)
}

func TestRebuildLoyaltyBalance(t *testing.T) {
	f := newBillingFixture()
	// Counter drifted: ledger says 30, counter says 99.
	f.customers.customers[2] = &model.Customer{ID: 2, Name: "Meera", LoyaltyPoints: 99}
	f.loyalty.rows = []model.LoyaltyTransaction{
		{CustomerID: 2, Type: model.LoyaltyEarn, Points: 50},
		{CustomerID: 2, Type: model.LoyaltyRedeem, Points: 20},
	}

	resp, err := f.svc.RebuildLoyaltyBalance(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 99, resp.PreviousBalance)
	assert.Equal(t, 30, resp.RebuiltBalance)
	assert.Equal(t, 30, f.customers.customers[2].LoyaltyPoints)
}

func TestGetBill_NotFound(t *testing.T) {
	f := newBillingFixture()
	_, err := f.svc.GetBill(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBillNotFound)
}
