package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"villasol/internal/errors"
	"villasol/internal/service"
)

// SlideHandler handles carousel slide endpoints.
type SlideHandler struct {
	slideService service.SlideService
}

// NewSlideHandler creates a new slide handler.
func NewSlideHandler(slideService service.SlideService) *SlideHandler {
	return &SlideHandler{slideService: slideService}
}

// SlideRequest represents a slide create/update request (multipart form).
type SlideRequest struct {
	Title    string `form:"title" json:"title" validate:"required,max=255"`
	Caption  string `form:"caption" json:"caption" validate:"max=500"`
	Position int    `form:"position" json:"position" validate:"min=0"`
}

// List godoc
// @Summary List slides in carousel order
// @Tags slides
// @Produce json
// @Success 200 {array} model.Slide
// @Failure 500 {object} errors.ErrorResponse
// @Router /slides [get]
func (h *SlideHandler) List(c echo.Context) error {
	slides, err := h.slideService.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, slides)
}

// Create godoc
// @Summary Create a slide
// @Tags slides
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param caption formData string false "Caption"
// @Param position formData int false "Carousel position"
// @Param image formData file true "Slide image"
// @Success 201 {object} model.Slide
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /slides [post]
func (h *SlideHandler) Create(c echo.Context) error {
	var req SlideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, err := openImage(c)
	if err != nil {
		return err
	}
	if image == nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "slide image is required",
			Code:  "IMAGE_REQUIRED",
		})
	}
	defer image.Close()

	slide, err := h.slideService.Create(c.Request().Context(), service.SlideInput{
		Title:    req.Title,
		Caption:  req.Caption,
		Position: req.Position,
	}, image)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, slide)
}

// Update godoc
// @Summary Update a slide, optionally replacing its image
// @Tags slides
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Param title formData string true "Title"
// @Param caption formData string false "Caption"
// @Param position formData int false "Carousel position"
// @Param image formData file false "Replacement image"
// @Success 200 {object} model.Slide
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /slides/{id} [put]
func (h *SlideHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req SlideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, err := openImage(c)
	if err != nil {
		return err
	}
	if image != nil {
		defer image.Close()
	}

	slide, err := h.slideService.Update(c.Request().Context(), id, service.SlideInput{
		Title:    req.Title,
		Caption:  req.Caption,
		Position: req.Position,
	}, image)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, slide)
}

// Delete godoc
// @Summary Delete a slide
// @Tags slides
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /slides/{id} [delete]
func (h *SlideHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.slideService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "slide deleted"})
}
