package handler

import (
	"net/http"

	"salondesk/internal/apierror"
	"salondesk/internal/dto"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ── Products ─────────────────────────────────────────────────────────────────

// CreateProduct godoc
// @Summary      Add a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProductRequest true "Product detail"
// @Success      201  {object} dto.ProductResponse
// @Router       /v1/products [post]
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to create product"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListProducts godoc
// @Summary      List products
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        all query bool false "Include inactive products"
// @Success      200 {array} dto.ProductResponse
// @Router       /v1/products [get]
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	resp, err := h.svc.ListProducts(c.Request.Context(), c.Query("all") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProduct godoc
// @Summary      Get one product
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Product id"
// @Success      200 {object} dto.ProductResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id} [get]
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProduct godoc
// @Summary      Update a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Product id"
// @Param        body body dto.ProductRequest true "Product detail"
// @Success      200  {object} dto.ProductResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/products/{id} [put]
func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteProduct godoc
// @Summary      Deactivate a product
// @Tags         inventory
// @Security     BearerAuth
// @Param        id path int true "Product id"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id} [delete]
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Stock ────────────────────────────────────────────────────────────────────

// RecordMovement godoc
// @Summary      Record a manual stock movement
// @Description  Appends an IN/OUT row to the movement ledger and updates the product counter in the same transaction.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.StockMoveRequest true "Movement detail"
// @Success      201  {object} dto.StockMovementResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/stock/movements [post]
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req dto.StockMoveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordMovement(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMovements godoc
// @Summary      List stock movements
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query int    false "Filter by product"
// @Param        from       query string false "From date YYYY-MM-DD"
// @Param        to         query string false "To date YYYY-MM-DD"
// @Param        limit      query int    false "Max rows (default 100)"
// @Success      200 {array} dto.StockMovementResponse
// @Router       /v1/stock/movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filter dto.StockMovementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list movements"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LowStockAlerts godoc
// @Summary      Products at or below their minimum stock level
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.LowStockAlert
// @Router       /v1/stock/alerts [get]
func (h *InventoryHandler) LowStockAlerts(c *gin.Context) {
	resp, err := h.svc.LowStockAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list alerts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RebuildStock godoc
// @Summary      Rebuild a product's stock counter from the movement ledger
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Product id"
// @Success      200 {object} dto.StockRebuildResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id}/stock/rebuild [post]
func (h *InventoryHandler) RebuildStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.RebuildStockQuantity(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Suppliers ────────────────────────────────────────────────────────────────

// CreateSupplier godoc
// @Summary      Add a supplier
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SupplierRequest true "Supplier detail"
// @Success      201  {object} dto.SupplierResponse
// @Router       /v1/suppliers [post]
func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to create supplier"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSuppliers godoc
// @Summary      List suppliers
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.SupplierResponse
// @Router       /v1/suppliers [get]
func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	resp, err := h.svc.ListSuppliers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list suppliers"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSupplier godoc
// @Summary      Update a supplier
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Supplier id"
// @Param        body body dto.SupplierRequest true "Supplier detail"
// @Success      200  {object} dto.SupplierResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/suppliers/{id} [put]
func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateSupplier(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("supplier not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSupplier godoc
// @Summary      Deactivate a supplier
// @Tags         inventory
// @Security     BearerAuth
// @Param        id path int true "Supplier id"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/suppliers/{id} [delete]
func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteSupplier(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("supplier not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
