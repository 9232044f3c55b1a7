package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Options configures the middleware chain.
type Options struct {
	// AllowedOrigins lists the origins allowed by CORS; "*" allows any
	AllowedOrigins []string

	// Recovery configures panic recovery
	Recovery RecoveryConfig
}

// DefaultOptions returns options allowing any origin with default recovery.
func DefaultOptions() Options {
	return Options{
		AllowedOrigins: []string{"*"},
		Recovery:       DefaultRecoveryConfig(),
	}
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//  4. CORS - Last, answers preflight requests from the browser front end
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithOptions(e, log, DefaultOptions())
}

// SetupWithOptions registers middleware with custom CORS and recovery configuration.
func SetupWithOptions(e *echo.Echo, log zerolog.Logger, opts Options) {
	e.Use(Chain(log, opts)...)
}

// Chain returns all middleware as a slice for use with route groups.
// Useful when you want to apply middleware to specific route groups only.
func Chain(log zerolog.Logger, opts Options) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, opts.Recovery),
		CORS(opts.AllowedOrigins),
	}
}

// CORS returns middleware allowing the given origins to call the API.
// An empty list allows any origin.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, echo.HeaderLocation},
	})
}
