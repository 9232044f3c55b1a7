package http

import (
	"github.com/labstack/echo/v4"

	"github.com/rove-rewards/redemption-optimizer/internal/adapter/http/response"
	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// ListAirports handles GET /api/v1/airports
//
// @Summary Popular airports
// @Description Airports offered by the home page origin and destination selects, with their local dates
// @Tags search
// @Produce json
// @Success 200 {object} AirportsResponse
// @Router /api/v1/airports [get]
func (h *Handler) ListAirports(c echo.Context) error {
	return response.OK(c, &AirportsResponse{
		Airports: ToAirportDTOs(domain.PopularAirports(), h.clock),
	})
}

// About handles GET /api/v1/about
//
// @Summary About page
// @Tags pages
// @Produce json
// @Success 200 {object} domain.AboutContent
// @Router /api/v1/about [get]
func (h *Handler) About(c echo.Context) error {
	return response.OK(c, domain.About())
}

// FeedbackForm handles GET /api/v1/feedback/form
//
// @Summary Initial feedback form
// @Description Empty form state with the allowed usage types and improvement tags
// @Tags pages
// @Produce json
// @Success 200 {object} FeedbackFormResponse
// @Router /api/v1/feedback/form [get]
func (h *Handler) FeedbackForm(c echo.Context) error {
	return response.OK(c, NewFeedbackFormResponse())
}

// SubmitFeedback handles POST /api/v1/feedback
//
// @Summary Submit feedback
// @Description Validates and logs the feedback. Nothing is stored or sent anywhere.
// @Tags pages
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback form"
// @Success 202 {object} FeedbackAckResponse
// @Failure 400 {object} response.ErrorDetail
// @Router /api/v1/feedback [post]
func (h *Handler) SubmitFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	feedback, err := ToDomainFeedback(&req)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	submission, err := h.feedback.Submit(c.Request().Context(), feedback)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Accepted(c, NewFeedbackAckResponse(submission))
}
