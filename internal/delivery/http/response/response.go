// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`              // business error code, e.g. "CART_EMPTY"
	Details string `json:"details,omitempty"` // omitted for 5xx responses
}

func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError reports a request body or parameter that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

func ValidationError(c echo.Context, details string) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", details)
}

func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}
