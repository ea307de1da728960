package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salondesk/internal/billing"
	"salondesk/internal/dto"
	"salondesk/internal/model"
	"salondesk/internal/repository"
	"salondesk/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Settings keys read by the billing flow.
const (
	SettingGSTRate     = "gst_rate"
	SettingLoyaltyRate = "loyalty_rate"
)

var ErrBillNotFound = errors.New("bill not found")

type BillingService interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error)
	GetBill(ctx context.Context, id uint) (*dto.BillDetailResponse, error)
	ListBills(ctx context.Context, filter dto.BillFilter) (*dto.BillListResponse, error)
	ListCustomerVisits(ctx context.Context, customerID uint) ([]dto.CustomerVisit, error)
	RebuildLoyaltyBalance(ctx context.Context, customerID uint) (*dto.LoyaltyRebuildResponse, error)
}

type billingService struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockMovementRepository
	loyaltyRepo  repository.LoyaltyRepository
	settingsRepo repository.SettingsRepository
	dispatcher   *worker.Dispatcher
}

func NewBillingService(
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockMovementRepository,
	loyaltyRepo repository.LoyaltyRepository,
	settingsRepo repository.SettingsRepository,
	dispatcher *worker.Dispatcher,
) BillingService {
	return &billingService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		loyaltyRepo:  loyaltyRepo,
		settingsRepo: settingsRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── CreateBill ────────────────────────────────────────────────────────────────
// The whole sale is one atomic unit:
//   1. Price and validate items (pre-flight, outside TX)
//   2. Apply discount, then GST on the discounted base
//   3. Resolve loyalty accrual and redemption against the customer's balance
//   4. Reconcile payments against the net amount — fails BEFORE any write
//   5. BEGIN TX: bill + items + payments, loyalty ledger + counter,
//      stock OUT movements + counters
//   6. COMMIT, then (async) dispatch the receipt job

func (s *billingService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error) {
	// 1. Pre-flight pricing. The name snapshot gets the same trim treatment
	// as service names: whitespace-only is not a name.
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, billing.NewValidationError("customer name required")
	}
	lines := make([]billing.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, billing.LineItem{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			UnitPrice:       item.UnitPrice,
			DurationMinutes: item.DurationMinutes,
			Quantity:        item.Quantity,
			StaffID:         item.StaffID,
			StaffName:       item.StaffName,
		})
	}
	priced, subtotal, err := billing.PriceItems(lines)
	if err != nil {
		return nil, err
	}

	// 2. Discount and tax. The request rate wins; otherwise the stored setting.
	gstRate := s.decimalSetting(ctx, SettingGSTRate)
	if req.GSTRate != nil {
		gstRate = *req.GSTRate
	}
	breakdown := billing.ApplyDiscountAndTax(subtotal, req.DiscountAmount, gstRate)

	// 3. Loyalty. An unknown customer id disables the loyalty stage rather
	// than failing the sale; the name snapshot still goes on the bill.
	var customer *model.Customer
	if req.CustomerID != nil {
		if c, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err == nil {
			customer = c
		}
	}
	balance := 0
	if customer != nil {
		balance = customer.LoyaltyPoints
	}
	loyalty := billing.ResolveLoyalty(
		breakdown.TotalAmount,
		customer != nil,
		balance,
		s.decimalSetting(ctx, SettingLoyaltyRate),
		req.LoyaltyRedeemPoints,
	)

	net := breakdown.TotalAmount.Sub(loyalty.RedemptionValue)
	if net.IsNegative() {
		net = decimal.Zero
	}

	// 4. Payment reconciliation — the last gate before any write.
	tenders := make([]billing.Tender, 0, len(req.Payments))
	for _, p := range req.Payments {
		tenders = append(tenders, billing.Tender{Mode: p.Mode, Amount: p.Amount, Reference: p.Reference})
	}
	accepted, err := billing.ReconcilePayments(net, tenders)
	if err != nil {
		return nil, err
	}

	// 5. ACID transaction
	bill := model.Bill{
		CustomerName:          customerName,
		BillDate:              time.Now(),
		Subtotal:              subtotal,
		DiscountAmount:        breakdown.DiscountAmount,
		GSTRate:               gstRate,
		GSTAmount:             breakdown.TaxAmount,
		TotalAmount:           breakdown.TotalAmount,
		NetAmount:             net,
		Status:                "FINAL",
		LoyaltyPointsEarned:   loyalty.Earned,
		LoyaltyPointsRedeemed: loyalty.Redeemed,
	}
	if customer != nil {
		bill.CustomerID = &customer.ID
	}
	for _, p := range priced {
		bill.Items = append(bill.Items, model.BillItem{
			ServiceID:       p.ServiceID,
			ServiceName:     p.ServiceName,
			StaffID:         p.StaffID,
			StaffName:       p.StaffName,
			UnitPrice:       p.UnitPrice,
			DurationMinutes: p.DurationMinutes,
			Quantity:        p.Quantity,
			LineTotal:       p.LineTotal,
		})
	}
	for _, t := range accepted {
		bill.Payments = append(bill.Payments, model.BillPayment{
			Mode:      t.Mode,
			Amount:    t.Amount,
			Reference: t.Reference,
		})
	}

	txErr := runTx(ctx, s.billRepo.DB(), func(tx *gorm.DB) error {
		if err := s.billRepo.Create(ctx, tx, &bill); err != nil {
			return err
		}

		// Loyalty ledger + counter move in lockstep.
		if customer != nil && (loyalty.Earned > 0 || loyalty.Redeemed > 0) {
			delta := loyalty.Earned - loyalty.Redeemed
			if err := s.customerRepo.UpdateLoyaltyPointsTx(tx, customer.ID, delta); err != nil {
				return err
			}
			if loyalty.Earned > 0 {
				row := model.LoyaltyTransaction{
					CustomerID: customer.ID,
					BillID:     &bill.ID,
					Type:       model.LoyaltyEarn,
					Points:     loyalty.Earned,
				}
				if err := s.loyaltyRepo.CreateTx(tx, &row); err != nil {
					return err
				}
			}
			if loyalty.Redeemed > 0 {
				row := model.LoyaltyTransaction{
					CustomerID: customer.ID,
					BillID:     &bill.ID,
					Type:       model.LoyaltyRedeem,
					Points:     loyalty.Redeemed,
				}
				if err := s.loyaltyRepo.CreateTx(tx, &row); err != nil {
					return err
				}
			}
		}

		// Stock deduction from each catalog-linked item's bill of materials.
		reason := model.StockReasonServiceUsage
		for i, p := range priced {
			if p.ServiceID == nil {
				continue
			}
			links, err := s.serviceRepo.ListProductLinksTx(tx, *p.ServiceID)
			if err != nil {
				return err
			}
			reqs := make([]billing.ProductRequirement, 0, len(links))
			for _, link := range links {
				reqs = append(reqs, billing.ProductRequirement{ProductID: link.ProductID, Quantity: link.Quantity})
			}
			for _, usage := range billing.ResolveStockUsage(reqs, p.Quantity) {
				if err := s.productRepo.AdjustStockTx(tx, usage.ProductID, usage.Quantity.Neg()); err != nil {
					return fmt.Errorf("stock deduction for product %d: %w", usage.ProductID, err)
				}
				var itemID *uint
				if i < len(bill.Items) {
					itemID = &bill.Items[i].ID
				}
				mov := model.StockMovement{
					ProductID:         usage.ProductID,
					MovementDate:      bill.BillDate,
					Quantity:          usage.Quantity,
					Type:              model.StockOut,
					Reason:            &reason,
					RelatedServiceID:  p.ServiceID,
					RelatedBillItemID: itemID,
				}
				if err := s.stockRepo.CreateTx(tx, &mov); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// 6. Receipt rendering is best-effort and never fails the sale.
	if s.dispatcher != nil {
		s.dispatcher.EnqueueReceipt(bill.ID)
	}

	return &dto.BillResponse{
		ID:           bill.ID,
		CustomerID:   bill.CustomerID,
		CustomerName: bill.CustomerName,
		BillDate:     bill.BillDate.Format(time.RFC3339),
		TotalAmount:  bill.TotalAmount,
		NetAmount:    bill.NetAmount,
	}, nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *billingService) GetBill(ctx context.Context, id uint) (*dto.BillDetailResponse, error) {
	b, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBillNotFound
	}
	return billToDetail(b), nil
}

func (s *billingService) ListBills(ctx context.Context, filter dto.BillFilter) (*dto.BillListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	bills, total, err := s.billRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		items = append(items, dto.BillResponse{
			ID:           b.ID,
			CustomerID:   b.CustomerID,
			CustomerName: b.CustomerName,
			BillDate:     b.BillDate.Format(time.RFC3339),
			TotalAmount:  b.TotalAmount,
			NetAmount:    b.NetAmount,
		})
	}
	return &dto.BillListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *billingService) ListCustomerVisits(ctx context.Context, customerID uint) ([]dto.CustomerVisit, error) {
	bills, err := s.billRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	visits := make([]dto.CustomerVisit, 0, len(bills))
	for _, b := range bills {
		visits = append(visits, dto.CustomerVisit{
			BillID:      b.ID,
			BillDate:    b.BillDate.Format(time.RFC3339),
			TotalAmount: b.TotalAmount,
		})
	}
	return visits, nil
}

// RebuildLoyaltyBalance recomputes a customer's points counter from the
// append-only ledger and overwrites the denormalized value. Used when the
// counter is suspected to have drifted (e.g. after a restored backup).
func (s *billingService) RebuildLoyaltyBalance(ctx context.Context, customerID uint) (*dto.LoyaltyRebuildResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	// Snapshot before the overwrite; the repo may hand back a live row.
	previous := customer.LoyaltyPoints
	balance, err := s.loyaltyRepo.LedgerBalance(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.SetLoyaltyPoints(ctx, customerID, balance); err != nil {
		return nil, err
	}
	return &dto.LoyaltyRebuildResponse{
		CustomerID:      customerID,
		PreviousBalance: previous,
		RebuiltBalance:  balance,
	}, nil
}

// decimalSetting reads a numeric setting, treating a missing or malformed
// value as zero so billing still works on a fresh database.
func (s *billingService) decimalSetting(ctx context.Context, key string) decimal.Decimal {
	raw, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func billToDetail(b *model.Bill) *dto.BillDetailResponse {
	items := make([]dto.BillItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, dto.BillItemResponse{
			ServiceName:     item.ServiceName,
			StaffName:       item.StaffName,
			UnitPrice:       item.UnitPrice,
			DurationMinutes: item.DurationMinutes,
			Quantity:        item.Quantity,
			LineTotal:       item.LineTotal,
		})
	}
	payments := make([]dto.BillPaymentResponse, 0, len(b.Payments))
	for _, p := range b.Payments {
		payments = append(payments, dto.BillPaymentResponse{
			Mode:      p.Mode,
			Amount:    p.Amount,
			Reference: p.Reference,
		})
	}
	return &dto.BillDetailResponse{
		ID:                    b.ID,
		CustomerID:            b.CustomerID,
		CustomerName:          b.CustomerName,
		BillDate:              b.BillDate.Format(time.RFC3339),
		Subtotal:              b.Subtotal,
		DiscountAmount:        b.DiscountAmount,
		GSTRate:               b.GSTRate,
		GSTAmount:             b.GSTAmount,
		TotalAmount:           b.TotalAmount,
		NetAmount:             b.NetAmount,
		Status:                b.Status,
		LoyaltyPointsEarned:   b.LoyaltyPointsEarned,
		LoyaltyPointsRedeemed: b.LoyaltyPointsRedeemed,
		Items:                 items,
		Payments:              payments,
	}
}
