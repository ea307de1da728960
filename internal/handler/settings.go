package handler

import (
	"errors"
	"net/http"

	"salondesk/internal/apierror"
	"salondesk/internal/dto"
	"salondesk/internal/repository"
	"salondesk/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the key-value business settings and the backup
// routines. The admin PIN hash is never readable through this surface.
type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
	backups      service.BackupService
}

func NewSettingsHandler(settingsRepo repository.SettingsRepository, backups service.BackupService) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo, backups: backups}
}

// hiddenKeys are settings excluded from the read surface.
var hiddenKeys = map[string]bool{service.SettingAdminPIN: true}

// List godoc
// @Summary      List business settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.SettingResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsRepo.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list settings"))
		return
	}
	out := make([]dto.SettingResponse, 0, len(settings))
	for _, s := range settings {
		if hiddenKeys[s.Key] {
			continue
		}
		out = append(out, dto.SettingResponse{Key: s.Key, Value: s.Value})
	}
	c.JSON(http.StatusOK, out)
}

// Update godoc
// @Summary      Set one business setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key  path string true "Setting key, e.g. gst_rate"
// @Param        body body dto.UpdateSettingRequest true "New value"
// @Success      200  {object} dto.SettingResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/settings/{key} [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	key := c.Param("key")
	if key == "" || hiddenKeys[key] {
		c.JSON(http.StatusBadRequest, apierror.New("invalid setting key"))
		return
	}
	var req dto.UpdateSettingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.settingsRepo.Set(c.Request.Context(), key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to save setting"))
		return
	}
	c.JSON(http.StatusOK, dto.SettingResponse{Key: key, Value: req.Value})
}

// CreateBackup godoc
// @Summary      Snapshot the database file
// @Tags         backups
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} dto.BackupResponse
// @Router       /v1/backups [post]
func (h *SettingsHandler) CreateBackup(c *gin.Context) {
	resp, err := h.backups.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("backup failed"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListBackups godoc
// @Summary      List available backups, newest first
// @Tags         backups
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BackupResponse
// @Router       /v1/backups [get]
func (h *SettingsHandler) ListBackups(c *gin.Context) {
	resp, err := h.backups.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list backups"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RestoreBackup godoc
// @Summary      Restore a backup over the live database
// @Description  Overwrites the database file. Restart the application afterwards so all connections reopen against the restored state.
// @Tags         backups
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "Backup file name"
// @Success      200  {object} map[string]string
// @Failure      404  {object} apierror.APIError
// @Router       /v1/backups/{name}/restore [post]
func (h *SettingsHandler) RestoreBackup(c *gin.Context) {
	if err := h.backups.Restore(c.Request.Context(), c.Param("name")); err != nil {
		if errors.Is(err, service.ErrBackupNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("backup not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("restore failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "restored", "note": "restart the application to reload the database"})
}
