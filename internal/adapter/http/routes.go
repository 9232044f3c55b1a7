package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the versioned group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	api.GET("/airports", h.ListAirports)
	api.POST("/search", h.Search)
	api.GET("/value", h.CalculateValue)
	api.GET("/about", h.About)

	redemptions := api.Group("/redemptions")
	redemptions.GET("", h.ListRedemptions)
	redemptions.POST("/rank", h.RankRedemptions)

	feedback := api.Group("/feedback")
	feedback.GET("/form", h.FeedbackForm)
	feedback.POST("", h.SubmitFeedback)
}
