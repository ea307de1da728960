package handler

import (
	"net/http"

	"salondesk/internal/apierror"
	"salondesk/internal/dto"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

type AppointmentsHandler struct{ svc service.AppointmentService }

func NewAppointmentsHandler(svc service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{svc: svc}
}

// Create godoc
// @Summary      Book an appointment
// @Description  End time is derived from the summed service durations.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateAppointmentRequest true "Appointment detail"
// @Success      201  {object} dto.AppointmentResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/appointments [post]
func (h *AppointmentsHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
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

// Get godoc
// @Summary      Get one appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Appointment id"
// @Success      200 {object} dto.AppointmentResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/appointments/{id} [get]
func (h *AppointmentsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("appointment not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List appointments in a date range
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        from     query string true  "From date YYYY-MM-DD"
// @Param        to       query string true  "To date YYYY-MM-DD (inclusive)"
// @Param        staff_id query int    false "Filter by staff"
// @Success      200 {array} dto.AppointmentResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/appointments [get]
func (h *AppointmentsHandler) List(c *gin.Context) {
	var filter dto.AppointmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("from and to dates are required"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Move an appointment through its lifecycle
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Appointment id"
// @Param        body body dto.UpdateAppointmentStatusRequest true "New status"
// @Success      200  {object} dto.AppointmentResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/appointments/{id}/status [put]
func (h *AppointmentsHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateAppointmentStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
