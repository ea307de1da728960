package handler

import (
	"net/http"

	"salondesk/internal/apierror"
	"salondesk/internal/dto"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ── Services ─────────────────────────────────────────────────────────────────

// CreateService godoc
// @Summary      Add a service to the menu
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ServiceRequest true "Service detail"
// @Success      201  {object} dto.ServiceResponse
// @Router       /v1/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateService(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to create service"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListServices godoc
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        all query bool false "Include inactive services"
// @Success      200 {array} dto.ServiceResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	resp, err := h.svc.ListServices(c.Request.Context(), c.Query("all") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list services"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateService godoc
// @Summary      Update a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Service id"
// @Param        body body dto.ServiceRequest true "Service detail"
// @Success      200  {object} dto.ServiceResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ServiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("service not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteService godoc
// @Summary      Deactivate a service
// @Tags         catalog
// @Security     BearerAuth
// @Param        id path int true "Service id"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteService(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("service not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Bill-of-materials links ──────────────────────────────────────────────────

// AddProductLink godoc
// @Summary      Link a product into a service's bill of materials
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Service id"
// @Param        body body dto.ServiceProductRequest true "Product and quantity per unit"
// @Success      201  {object} dto.ServiceProductResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/services/{id}/products [post]
func (h *CatalogHandler) AddProductLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ServiceProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddProductLink(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListProductLinks godoc
// @Summary      List a service's bill of materials
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Service id"
// @Success      200 {array} dto.ServiceProductResponse
// @Router       /v1/services/{id}/products [get]
func (h *CatalogHandler) ListProductLinks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListProductLinks(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list links"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveProductLink godoc
// @Summary      Remove a bill-of-materials link
// @Tags         catalog
// @Security     BearerAuth
// @Param        id path int true "Link id"
// @Success      204
// @Router       /v1/service-products/{id} [delete]
func (h *CatalogHandler) RemoveProductLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.RemoveProductLink(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to remove link"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Staff ────────────────────────────────────────────────────────────────────

// CreateStaff godoc
// @Summary      Add a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.StaffRequest true "Staff detail"
// @Success      201  {object} dto.StaffResponse
// @Router       /v1/staff [post]
func (h *CatalogHandler) CreateStaff(c *gin.Context) {
	var req dto.StaffRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateStaff(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to create staff"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListStaff godoc
// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        all query bool false "Include inactive staff"
// @Success      200 {array} dto.StaffResponse
// @Router       /v1/staff [get]
func (h *CatalogHandler) ListStaff(c *gin.Context) {
	resp, err := h.svc.ListStaff(c.Request.Context(), c.Query("all") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list staff"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStaff godoc
// @Summary      Update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Staff id"
// @Param        body body dto.StaffRequest true "Staff detail"
// @Success      200  {object} dto.StaffResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/staff/{id} [put]
func (h *CatalogHandler) UpdateStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StaffRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStaff(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("staff not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteStaff godoc
// @Summary      Deactivate a staff member
// @Tags         staff
// @Security     BearerAuth
// @Param        id path int true "Staff id"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/staff/{id} [delete]
func (h *CatalogHandler) DeleteStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteStaff(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("staff not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
