package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"villasol/internal/service"
)

// PromotionHandler handles promotion endpoints.
type PromotionHandler struct {
	promotionService service.PromotionService
}

// NewPromotionHandler creates a new promotion handler.
func NewPromotionHandler(promotionService service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// PromotionRequest represents a promotion create/update request. The active
// flag is not accepted: it is derived from the window by the scheduler.
type PromotionRequest struct {
	Name      string    `json:"name" validate:"required,max=255"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// AttachPackageRequest represents a promotion-package attach request.
type AttachPackageRequest struct {
	PackageID uint `json:"package_id" validate:"required"`
}

// List godoc
// @Summary List all promotions
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Promotion
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions [get]
func (h *PromotionHandler) List(c echo.Context) error {
	promotions, err := h.promotionService.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promotions)
}

// ListActive godoc
// @Summary List currently active promotions with their packages
// @Tags promotions
// @Produce json
// @Success 200 {array} model.Promotion
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions/active [get]
func (h *PromotionHandler) ListActive(c echo.Context) error {
	promotions, err := h.promotionService.ListActive(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promotions)
}

// Get godoc
// @Summary Get a promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 200 {object} model.Promotion
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	promotion, err := h.promotionService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promotion)
}

// Create godoc
// @Summary Create a promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PromotionRequest true "Promotion data"
// @Success 201 {object} model.Promotion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions [post]
func (h *PromotionHandler) Create(c echo.Context) error {
	var req PromotionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	promotion, err := h.promotionService.Create(c.Request().Context(), service.PromotionInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, promotion)
}

// Update godoc
// @Summary Update a promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param request body PromotionRequest true "Promotion data"
// @Success 200 {object} model.Promotion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions/{id} [put]
func (h *PromotionHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req PromotionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	promotion, err := h.promotionService.Update(c.Request().Context(), id, service.PromotionInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promotion)
}

// Delete godoc
// @Summary Delete a promotion and its package links
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.promotionService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "promotion deleted"})
}

// AttachPackage godoc
// @Summary Put a package on a promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param request body AttachPackageRequest true "Package to attach"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions/{id}/packages [post]
func (h *PromotionHandler) AttachPackage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req AttachPackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.promotionService.AttachPackage(c.Request().Context(), id, req.PackageID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "package attached"})
}

// DetachPackage godoc
// @Summary Take a package off a promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param packageID path int true "Package ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /promotions/{id}/packages/{packageID} [delete]
func (h *PromotionHandler) DetachPackage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	packageID, err := parseID(c, "packageID")
	if err != nil {
		return err
	}
	if err := h.promotionService.DetachPackage(c.Request().Context(), id, packageID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "package detached"})
}
