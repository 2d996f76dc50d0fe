// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"
	"strconv"

	"furnishop/internal/delivery/http/response"
	domainerrors "furnishop/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// bindAndValidate decodes the request into req and runs the struct validator.
// It writes the error response itself and reports whether the handler may continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err.Error())
	}

	return true, nil
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
