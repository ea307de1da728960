package handler

import (
	"errors"
	"net/http"

	"salondesk/internal/apierror"
	"salondesk/internal/billing"
	"salondesk/internal/dto"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct{ svc service.BillingService }

func NewBillingHandler(svc service.BillingService) *BillingHandler {
	return &BillingHandler{svc: svc}
}

// CreateBill godoc
// @Summary      Finalize a sale
// @Description  Prices the items, applies discount and GST, settles loyalty points, reconciles payments, and deducts linked product stock — all or nothing.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateBillRequest true "Bill detail"
// @Success      201  {object} dto.BillResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/bills [post]
func (h *BillingHandler) CreateBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateBill(c.Request.Context(), req)
	if err != nil {
		switch {
		case billing.IsValidationError(err), errors.Is(err, billing.ErrInsufficientPayment):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.Error(err) //nolint:errcheck
			c.JSON(http.StatusInternalServerError, apierror.New("failed to create bill"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetBill godoc
// @Summary      Get one bill with items and payments
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bill id"
// @Success      200 {object} dto.BillDetailResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/bills/{id} [get]
func (h *BillingHandler) GetBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetBill(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("bill not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBills godoc
// @Summary      List bills
// @Description  Paginated bill list filtered by date (default: today).
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Param        date  query string false "Date YYYY-MM-DD (default: today)"
// @Param        page  query int    false "Page (default 1)"
// @Param        limit query int    false "Rows per page (default 50)"
// @Success      200   {object} dto.BillListResponse
// @Failure      400   {object} apierror.APIError
// @Router       /v1/bills [get]
func (h *BillingHandler) ListBills(c *gin.Context) {
	var filter dto.BillFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListBills(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list bills"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CustomerVisits godoc
// @Summary      Visit history for one customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Customer id"
// @Success      200 {array} dto.CustomerVisit
// @Router       /v1/customers/{id}/visits [get]
func (h *BillingHandler) CustomerVisits(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	visits, err := h.svc.ListCustomerVisits(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list visits"))
		return
	}
	c.JSON(http.StatusOK, visits)
}

// RebuildLoyalty godoc
// @Summary      Rebuild a customer's loyalty balance from the ledger
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Customer id"
// @Success      200 {object} dto.LoyaltyRebuildResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/customers/{id}/loyalty/rebuild [post]
func (h *BillingHandler) RebuildLoyalty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.RebuildLoyaltyBalance(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
