package http

import (
	"github.com/labstack/echo/v4"

	"github.com/rove-rewards/redemption-optimizer/internal/adapter/http/response"
	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
)

// Search handles POST /api/v1/search
//
// @Summary Submit a search
// @Description Validates the home page search form and redirects to the results view
// @Tags search
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body SearchRequest true "Search form"
// @Success 303 {object} SearchRedirectResponse "Location header holds the results path"
// @Failure 400 {object} response.ErrorDetail "Missing or malformed fields"
// @Router /api/v1/search [post]
func (h *Handler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	form := req.ToForm()
	if !form.CanSubmit() {
		details := make(map[string]string)
		for _, field := range form.MissingFields() {
			details[field] = field + " is required"
		}
		return response.ValidationErrorWithDetails(c, response.MsgSearchIncomplete, details)
	}

	query, err := req.Validate(h.location)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	location := query.ResultsPath()
	return response.SeeOther(c, location, &SearchRedirectResponse{
		Location: location,
		Search:   domain.NewSearchEcho(query),
	})
}

// ListRedemptions handles GET /api/v1/redemptions
//
// @Summary Results view
// @Description Synthesizes and ranks redemption options for the query. Missing origin, destination or miles yields the empty placeholder.
// @Tags redemptions
// @Produce json
// @Param origin query string false "Origin IATA code" example(BOS)
// @Param destination query string false "Destination IATA code" example(SFO)
// @Param departDate query string false "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param miles query string false "Miles to redeem" example(50000)
// @Param criterion query string false "value, fees or savings" default(value)
// @Param includeLayovers query bool false "Keep synthetic routes" default(true)
// @Param maxFees query number false "Maximum cash fees"
// @Param minValue query number false "Minimum value in cents per mile"
// @Param airlines query string false "Comma-separated carriers"
// @Success 200 {object} SwaggerResultsResponse
// @Failure 400 {object} response.ErrorDetail "Malformed parameters"
// @Router /api/v1/redemptions [get]
func (h *Handler) ListRedemptions(c echo.Context) error {
	var q RedemptionsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return response.BadRequest(c, "invalid query parameters")
	}

	if q.IsIncomplete() {
		empty := domain.EmptyRedemptionResponse(q.Echo(), domain.ParseCriterion(q.Criterion))
		return response.Results(c, NewResultsResponse(empty))
	}

	query, opts, err := q.Validate(h.location)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.redemptions.Search(c.Request().Context(), query, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, NewResultsResponse(result))
}

// RankRedemptions handles POST /api/v1/redemptions/rank
//
// @Summary Re-rank options
// @Description Re-orders a client-held option list under a new criterion without synthesizing new options
// @Tags redemptions
// @Accept json
// @Produce json
// @Param request body RankRequest true "Criterion and options"
// @Success 200 {object} RankResponse
// @Failure 400 {object} response.ErrorDetail
// @Router /api/v1/redemptions/rank [post]
func (h *Handler) RankRedemptions(c echo.Context) error {
	var req RankRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criterion := domain.ParseCriterion(req.Criterion)
	ranked, err := h.redemptions.Rank(c.Request().Context(), req.Options, criterion)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, NewRankResponse(criterion, ranked))
}

// CalculateValue handles GET /api/v1/value
//
// @Summary Value per mile
// @Description (cashPrice - fees) / miles, rounded to 4 decimals; 0 when miles is 0
// @Tags redemptions
// @Produce json
// @Param cashPrice query number true "Cash ticket price" example(650)
// @Param miles query number true "Miles used" example(40000)
// @Param fees query number false "Cash fees" example(25)
// @Success 200 {object} ValueResponse
// @Failure 400 {object} response.ErrorDetail
// @Router /api/v1/value [get]
func (h *Handler) CalculateValue(c echo.Context) error {
	var q ValueQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return response.BadRequest(c, "invalid query parameters")
	}

	cashPrice, miles, fees, err := q.Validate()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	value := usecase.CalculateValuePerMile(cashPrice, miles, fees)
	return response.OK(c, NewValueResponse(cashPrice, miles, fees, value))
}
