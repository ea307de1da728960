package handler

import (
	"errors"
	"net/http"

	"salondesk/internal/apierror"
	"salondesk/internal/dto"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Log in with the admin PIN
// @Description  Verifies the PIN against its stored hash and issues a JWT.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "PIN"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid PIN"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetPin godoc
// @Summary      Set or rotate the admin PIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.SetPinRequest true "Current and new PIN"
// @Success      204
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/pin [put]
func (h *AuthHandler) SetPin(c *gin.Context) {
	var req dto.SetPinRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetPin(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrInvalidPIN) {
			c.JSON(http.StatusUnauthorized, apierror.New("current PIN is wrong"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to set PIN"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Status godoc
// @Summary      Report whether a PIN has been configured
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.AuthStatusResponse
// @Router       /v1/auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	resp, err := h.svc.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to read auth status"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
