package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"villasol/internal/errors"
	"villasol/internal/service"
)

// PackageHandler handles stay package endpoints.
type PackageHandler struct {
	packageService service.PackageService
}

// NewPackageHandler creates a new package handler.
func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// PackageRequest represents a package create/update request.
type PackageRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Nights      int    `json:"nights" validate:"min=1"`
	People      int    `json:"people" validate:"min=1"`
}

func (r *PackageRequest) toInput() (service.PackageInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil || price.IsNegative() {
		return service.PackageInput{}, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}
	return service.PackageInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Nights:      r.Nights,
		People:      r.People,
	}, nil
}

// List godoc
// @Summary List stay packages
// @Tags packages
// @Produce json
// @Success 200 {array} model.Package
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	pkgs, err := h.packageService.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pkgs)
}

// Get godoc
// @Summary Get a package
// @Tags packages
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} model.Package
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages/{id} [get]
func (h *PackageHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	pkg, err := h.packageService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pkg)
}

// Create godoc
// @Summary Create a package
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PackageRequest true "Package data"
// @Success 201 {object} model.Package
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages [post]
func (h *PackageHandler) Create(c echo.Context) error {
	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	pkg, err := h.packageService.Create(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, pkg)
}

// Update godoc
// @Summary Update a package
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Param request body PackageRequest true "Package data"
// @Success 200 {object} model.Package
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages/{id} [put]
func (h *PackageHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	pkg, err := h.packageService.Update(c.Request().Context(), id, input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pkg)
}

// Delete godoc
// @Summary Delete a package
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages/{id} [delete]
func (h *PackageHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.packageService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "package deleted"})
}
