// Package middleware provides HTTP middleware for cross-cutting concerns.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/logger"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// requestIDKey is the context key for storing request ID.
	requestIDKey = "request_id"
	// maxRequestIDLength bounds client-supplied IDs before they reach the logs.
	maxRequestIDLength = 128
)

// RequestID returns middleware that generates or propagates request IDs.
// If the incoming request has a usable X-Request-ID header, it uses that value.
// Otherwise, it generates a new UUID.
// The request ID is stored in the echo context, in the request's context.Context
// and in the response headers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if !isUsableRequestID(reqID) {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)

			// Use cases only see context.Context
			req := c.Request()
			c.SetRequest(req.WithContext(logger.ContextWithRequestID(req.Context(), reqID)))

			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// isUsableRequestID accepts short printable ASCII IDs.
func isUsableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
