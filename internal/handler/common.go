package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"villasol/internal/errors"
)

// parseID extracts a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// openImage opens the optional "image" part of a multipart form. It returns
// (nil, nil) when the request carries no image; the caller owns closing the
// returned file.
func openImage(c echo.Context) (multipart.File, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unreadable image upload",
			Code:  "INVALID_IMAGE",
		})
	}
	return file, nil
}

// mapServiceError converts a service error into an echo HTTP error.
func mapServiceError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
