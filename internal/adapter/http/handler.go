package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rove-rewards/redemption-optimizer/internal/adapter/http/middleware"
	"github.com/rove-rewards/redemption-optimizer/internal/adapter/http/response"
	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/logger"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/timeutil"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
)

// Handler handles HTTP requests for every API endpoint.
type Handler struct {
	redemptions usecase.RedemptionSearchUseCase
	feedback    usecase.FeedbackUseCase
	location    *time.Location
	clock       timeutil.Clock
}

// NewHandler creates a new Handler. Calendar dates sent as timestamps are read in loc; nil means UTC.
func NewHandler(redemptions usecase.RedemptionSearchUseCase, feedback usecase.FeedbackUseCase, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		redemptions: redemptions,
		feedback:    feedback,
		location:    loc,
		clock:       timeutil.NewRealClock(),
	}
}

// WithClock replaces the clock used for airport local dates.
func (h *Handler) WithClock(clock timeutil.Clock) *Handler {
	h.clock = clock
	return h
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var feedbackErrs *usecase.FeedbackValidationError
	if errors.As(err, &feedbackErrs) {
		return response.ValidationError(c, feedbackErrs.Fields)
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrIncompleteSearch),
		errors.Is(err, domain.ErrInvalidFeedback):
		return h.handleValidationError(c, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return response.RequestCancelled(c)
	default:
		logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("path", c.Request().URL.Path).
			Msg("Request failed")
		return response.InternalServerError(c)
	}
}

// HTTPErrorHandler writes errors raised by echo itself (unknown route, wrong method)
// in the API error envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = response.InternalServerError(c)
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}

	switch {
	case he.Code == http.StatusNotFound:
		_ = response.NotFound(c)
	case he.Code >= http.StatusInternalServerError:
		_ = response.InternalServerError(c)
	default:
		_ = c.JSON(he.Code, &response.ErrorDetail{
			Code:    response.CodeInvalidRequest,
			Message: fmt.Sprint(he.Message),
		})
	}
}
