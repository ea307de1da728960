package handler

import (
	"net/http"
	"time"

	"salondesk/internal/apierror"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// DailySummary godoc
// @Summary      Daily revenue summary
// @Description  Revenue, customer count, top services, and per-staff service counts for one day.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Date YYYY-MM-DD (default: today)"
// @Success      200 {object} dto.DailySummaryResponse
// @Router       /v1/reports/daily-summary [get]
func (h *ReportsHandler) DailySummary(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	resp, err := h.svc.DailySummary(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build summary"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CashClosing godoc
// @Summary      Daily cash closing
// @Description  Income grouped by payment mode minus the day's expenses.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Date YYYY-MM-DD (default: today)"
// @Success      200 {object} dto.DailyCashClosingResponse
// @Router       /v1/reports/cash-closing [get]
func (h *ReportsHandler) CashClosing(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	resp, err := h.svc.DailyCashClosing(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build cash closing"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
