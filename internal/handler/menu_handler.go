package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"villasol/internal/errors"
	"villasol/internal/service"
)

// MenuHandler handles restaurant menu endpoints.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// MenuItemRequest represents a menu item create/update request (multipart form).
type MenuItemRequest struct {
	Name        string `form:"name" json:"name" validate:"required,max=255"`
	Description string `form:"description" json:"description"`
	Category    string `form:"category" json:"category" validate:"max=100"`
	Price       string `form:"price" json:"price" validate:"required"`
}

func (r *MenuItemRequest) toInput() (service.MenuItemInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil || price.IsNegative() {
		return service.MenuItemInput{}, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}
	return service.MenuItemInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       price,
	}, nil
}

// List godoc
// @Summary List the full menu
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menuService.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create a menu item
// @Tags menu
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Param price formData string true "Price"
// @Param image formData file false "Item image"
// @Success 201 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req MenuItemRequest
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

	image, err := openImage(c)
	if err != nil {
		return err
	}
	if image != nil {
		defer image.Close()
	}

	item, err := h.menuService.Create(c.Request().Context(), input, image)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update a menu item, optionally replacing its image
// @Tags menu
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Param price formData string true "Price"
// @Param image formData file false "Replacement image"
// @Success 200 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req MenuItemRequest
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

	image, err := openImage(c)
	if err != nil {
		return err
	}
	if image != nil {
		defer image.Close()
	}

	item, err := h.menuService.Update(c.Request().Context(), id, input, image)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.menuService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "menu item deleted"})
}
