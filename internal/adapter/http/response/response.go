// Package response provides standardized HTTP response builders for the redemption optimizer API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeNotFound        = "not_found"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgSearchIncomplete   = "Please fill in all required fields"
	MsgNotFound           = "Resource not found"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Accepted writes a 202 Accepted response with the given data.
func Accepted(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusAccepted, data)
}

// SeeOther writes a 303 See Other response pointing at location, with a JSON body
// for clients that do not follow redirects.
func SeeOther(c echo.Context, location string, data interface{}) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusSeeOther, data)
}
