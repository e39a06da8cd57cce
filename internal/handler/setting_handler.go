package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"villasol/internal/errors"
	"villasol/internal/service"
)

// SettingHandler handles site setting endpoints.
type SettingHandler struct {
	settingService service.SettingService
}

// NewSettingHandler creates a new setting handler.
func NewSettingHandler(settingService service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// SettingRequest represents a setting upsert request (multipart form).
type SettingRequest struct {
	Value string `form:"value" json:"value"`
}

// List godoc
// @Summary List all site settings
// @Tags settings
// @Produce json
// @Success 200 {array} model.SiteSetting
// @Failure 500 {object} errors.ErrorResponse
// @Router /settings [get]
func (h *SettingHandler) List(c echo.Context) error {
	settings, err := h.settingService.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

// Get godoc
// @Summary Get a site setting by key
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} model.SiteSetting
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /settings/{key} [get]
func (h *SettingHandler) Get(c echo.Context) error {
	key := c.Param("key")
	setting, err := h.settingService.Get(c.Request().Context(), key)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, setting)
}

// Set godoc
// @Summary Create or update a site setting
// @Tags settings
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param value formData string false "Setting value"
// @Param image formData file false "Setting image"
// @Success 200 {object} model.SiteSetting
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /settings/{key} [put]
func (h *SettingHandler) Set(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "setting key is required",
			Code:  "INVALID_KEY",
		})
	}

	var req SettingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	image, err := openImage(c)
	if err != nil {
		return err
	}
	if image != nil {
		defer image.Close()
	}

	setting, err := h.settingService.Set(c.Request().Context(), key, req.Value, image)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, setting)
}

// Delete godoc
// @Summary Delete a site setting
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /settings/{key} [delete]
func (h *SettingHandler) Delete(c echo.Context) error {
	key := c.Param("key")
	if err := h.settingService.Delete(c.Request().Context(), key); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "setting deleted"})
}
