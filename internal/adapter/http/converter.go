package http

import (
	"math"
	"strings"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/timeutil"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
)

// ToSearchOptions builds use case options from a raw criterion and parsed filters.
func ToSearchOptions(criterion string, filters *domain.FilterOptions) usecase.SearchOptions {
	return usecase.SearchOptions{
		Criterion: domain.ParseCriterion(criterion),
		Filters:   filters,
	}
}

// ToAirportDTOs attaches timezones and local dates to airports.
// Airports without a known timezone are dated in UTC.
func ToAirportDTOs(airports []domain.Airport, clock timeutil.Clock) []AirportDTO {
	out := make([]AirportDTO, 0, len(airports))
	for _, a := range airports {
		tz, ok := timeutil.AirportTimezone(a.Code)
		if !ok {
			tz = timeutil.UTC
		}
		dto := AirportDTO{Airport: a, Timezone: tz}
		if today, err := timeutil.TodayIn(clock, tz); err == nil {
			dto.LocalDate = timeutil.FormatDate(today)
		}
		out = append(out, dto)
	}
	return out
}

// ToDomainFeedback converts a FeedbackRequest to domain.Feedback.
// Returns ValidationErrors when the rating is not a whole number.
func ToDomainFeedback(req *FeedbackRequest) (domain.Feedback, error) {
	rating, err := req.ParseRating()
	if err != nil {
		return domain.Feedback{}, err
	}

	improvements := req.Improvements
	if improvements == nil {
		improvements = []string{}
	}
	return domain.Feedback{
		Name:         req.Name,
		Email:        req.Email,
		Rating:       rating,
		UsageType:    domain.UsageType(strings.ToLower(strings.TrimSpace(req.UsageType))),
		Message:      req.Feedback,
		Improvements: improvements,
		Recommend:    req.Recommend,
	}, nil
}

// NewFeedbackFormResponse builds the initial feedback form with its choice lists.
func NewFeedbackFormResponse() *FeedbackFormResponse {
	usageTypes := make([]UsageTypeDTO, 0, len(domain.UsageTypes()))
	for _, u := range domain.UsageTypes() {
		usageTypes = append(usageTypes, UsageTypeDTO{
			Value: string(u),
			Label: usageTypeLabels[u],
		})
	}

	return &FeedbackFormResponse{
		Form:            domain.NewFeedbackForm().Snapshot(),
		UsageTypes:      usageTypes,
		ImprovementTags: domain.ImprovementTags(),
		MaxRating:       domain.MaxRating,
	}
}

// NewFeedbackAckResponse builds the thank-you acknowledgement with a reset form.
func NewFeedbackAckResponse(s *domain.FeedbackSubmission) *FeedbackAckResponse {
	return &FeedbackAckResponse{
		ID:          s.ID,
		Message:     MsgFeedbackThanks,
		SubmittedAt: s.SubmittedAt,
		Form:        domain.NewFeedbackForm().Snapshot(),
	}
}

// NewRankResponse wraps a re-ranked list with its criterion and summary.
func NewRankResponse(criterion domain.Criterion, ranked []domain.RankedOption) *RankResponse {
	options := make([]domain.RedemptionOption, len(ranked))
	for i, o := range ranked {
		options[i] = o.RedemptionOption
	}
	return &RankResponse{
		Criterion: criterion,
		Label:     criterion.Label(),
		Summary:   usecase.Summarize(options),
		Options:   ranked,
	}
}

// NewValueResponse echoes the calculator inputs with the computed value.
func NewValueResponse(cashPrice, miles, fees, valuePerMile float64) *ValueResponse {
	return &ValueResponse{
		CashPrice:    cashPrice,
		Miles:        miles,
		Fees:         fees,
		ValuePerMile: valuePerMile,
		ValueCents:   math.Round(valuePerMile*100*100) / 100,
	}
}

// NewResultsResponse adds the criterion tabs to a results view.
func NewResultsResponse(r *domain.RedemptionResponse) *ResultsResponse {
	tabs := make([]CriterionDTO, 0, len(domain.Criteria()))
	for _, c := range domain.Criteria() {
		tabs = append(tabs, CriterionDTO{Value: string(c), Label: c.Label()})
	}
	return &ResultsResponse{
		RedemptionResponse: r,
		Label:              r.Criterion.Label(),
		Tabs:               tabs,
	}
}
