package handler

import (
	"net/http"
	"time"

	"salondesk/internal/apierror"
	"salondesk/internal/dto"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpensesHandler struct{ svc service.ExpenseService }

func NewExpensesHandler(svc service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{svc: svc}
}

// Create godoc
// @Summary      Record an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ExpenseRequest true "Expense detail"
// @Success      201  {object} dto.ExpenseResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/expenses [post]
func (h *ExpensesHandler) Create(c *gin.Context) {
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List expenses in a date range with their total
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "From date YYYY-MM-DD (default: today)"
// @Param        to   query string false "To date YYYY-MM-DD (default: today)"
// @Success      200 {object} dto.ExpenseListResponse
// @Router       /v1/expenses [get]
func (h *ExpensesHandler) List(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	from := c.DefaultQuery("from", today)
	to := c.DefaultQuery("to", today)
	resp, err := h.svc.List(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list expenses"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Expense id"
// @Param        body body dto.ExpenseRequest true "Expense detail"
// @Success      200  {object} dto.ExpenseResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/expenses/{id} [put]
func (h *ExpensesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete an expense
// @Tags         expenses
// @Security     BearerAuth
// @Param        id path int true "Expense id"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/expenses/{id} [delete]
func (h *ExpensesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("expense not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
