package service

import (
	"context"
	"errors"
	"testing"

	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSupplierRepo struct{}

func (r *stubSupplierRepo) Create(_ context.Context, _ *model.Supplier) error { return nil }
func (r *stubSupplierRepo) Update(_ context.Context, _ *model.Supplier) error { return nil }
func (r *stubSupplierRepo) SoftDelete(_ context.Context, _ uint) error        { return nil }
func (r *stubSupplierRepo) FindByID(_ context.Context, _ uint) (*model.Supplier, error) {
	return nil, errors.New("record not found")
}
func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) { return nil, nil }

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// stubProductCatalog extends the billing-test product stub with a findable
// product so movement recording can resolve names.
type stubProductCatalog struct {
	stubProductRepo
	products map[uint]*model.Product
}

func (r *stubProductCatalog) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func newInventoryFixture() (*stubProductCatalog, *stubStockRepo, InventoryService) {
	products := &stubProductCatalog{
		stubProductRepo: *newStubProductRepo(),
		products:        make(map[uint]*model.Product),
	}
	stock := &stubStockRepo{}
	svc := NewInventoryService(products, stock, &stubSupplierRepo{})
	return products, stock, svc
}

func TestRecordMovement_InIncreasesCounter(t *testing.T) {
	products, stock, svc := newInventoryFixture()
	products.products[1] = &model.Product{ID: 1, Name: "Shampoo"}
	products.stock[1] = decimal.NewFromInt(5)

	resp, err := svc.RecordMovement(context.Background(), dto.StockMoveRequest{
		ProductID: 1,
		Quantity:  decimal.NewFromInt(10),
		Type:      model.StockIn,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shampoo", resp.ProductName)
	assert.True(t, products.stock[1].Equal(decimal.NewFromInt(15)))
	require.Len(t, stock.movements, 1)
	assert.Equal(t, model.StockIn, stock.movements[0].Type)
}

func TestRecordMovement_OutDecreasesCounter(t *testing.T) {
	products, stock, svc := newInventoryFixture()
	products.products[1] = &model.Product{ID: 1, Name: "Dye"}
	products.stock[1] = decimal.RequireFromString("2.5")

	_, err := svc.RecordMovement(context.Background(), dto.StockMoveRequest{
		ProductID: 1,
		Quantity:  decimal.RequireFromString("0.5"),
		Type:      model.StockOut,
	})
	require.NoError(t, err)
	assert.True(t, products.stock[1].Equal(decimal.NewFromInt(2)), "stock = %s", products.stock[1])
	require.Len(t, stock.movements, 1)
	// ledger stores the unsigned magnitude; direction lives in Type
	assert.True(t, stock.movements[0].Quantity.Equal(decimal.RequireFromString("0.5")))
}

func TestRecordMovement_RejectsNonPositiveQuantity(t *testing.T) {
	products, stock, svc := newInventoryFixture()
	products.products[1] = &model.Product{ID: 1, Name: "Shampoo"}

	_, err := svc.RecordMovement(context.Background(), dto.StockMoveRequest{
		ProductID: 1,
		Quantity:  decimal.Zero,
		Type:      model.StockIn,
	})
	require.Error(t, err)
	assert.Empty(t, stock.movements)
}

func TestRecordMovement_UnknownProduct(t *testing.T) {
	_, _, svc := newInventoryFixture()
	_, err := svc.RecordMovement(context.Background(), dto.StockMoveRequest{
		ProductID: 77,
		Quantity:  decimal.NewFromInt(1),
		Type:      model.StockIn,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRebuildStockQuantity_FromLedger(t *testing.T) {
	products, stock, svc := newInventoryFixture()
	// Counter drifted to 100; ledger says 20 in, 5 out.
	products.products[2] = &model.Product{ID: 2, Name: "Oil", StockQuantity: decimal.NewFromInt(100)}
	stock.movements = []model.StockMovement{
		{ProductID: 2, Type: model.StockIn, Quantity: decimal.NewFromInt(20)},
		{ProductID: 2, Type: model.StockOut, Quantity: decimal.NewFromInt(5)},
		{ProductID: 3, Type: model.StockIn, Quantity: decimal.NewFromInt(999)},
	}

	resp, err := svc.RebuildStockQuantity(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, resp.PreviousQuantity.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.RebuiltQuantity.Equal(decimal.NewFromInt(15)))
	assert.True(t, products.stock[2].Equal(decimal.NewFromInt(15)))
}
