package http

import (
	"time"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// MsgFeedbackThanks acknowledges a feedback submission.
const MsgFeedbackThanks = "Thank you for your feedback! We'll use it to improve Rove Rewards."

// usageTypeLabels are the display labels of the usage type choices.
var usageTypeLabels = map[domain.UsageType]string{
	domain.UsagePlanning:   "Planning a trip",
	domain.UsageBooking:    "Ready to book",
	domain.UsageResearch:   "Researching options",
	domain.UsageComparison: "Comparing programs",
}

// SearchRedirectResponse is returned with the 303 redirect of an accepted search.
type SearchRedirectResponse struct {
	// Location is the results view path carrying the search as query parameters
	Location string `json:"location"`

	// Search echoes the normalized query
	Search domain.SearchEcho `json:"search"`
}

// AirportsResponse lists the popular airports offered by the search selects.
type AirportsResponse struct {
	Airports []AirportDTO `json:"airports"`
}

// AirportDTO is an airport with its local calendar date, used to bound the date pickers.
type AirportDTO struct {
	domain.Airport

	// Timezone is the IANA zone of the airport (e.g., "America/New_York")
	Timezone string `json:"timezone" example:"America/New_York"`

	// LocalDate is today's date at the airport (YYYY-MM-DD)
	LocalDate string `json:"localDate" example:"2025-06-01"`
}

// RankResponse is a re-ranked client list.
type RankResponse struct {
	Criterion domain.Criterion      `json:"criterion"`
	Label     string                `json:"label"`
	Summary   domain.ResultsSummary `json:"summary"`
	Options   []domain.RankedOption `json:"options"`
}

// ValueResponse is the value calculator output.
type ValueResponse struct {
	CashPrice    float64 `json:"cashPrice"`
	Miles        float64 `json:"miles"`
	Fees         float64 `json:"fees"`
	ValuePerMile float64 `json:"valuePerMile"`
	ValueCents   float64 `json:"valueCents"`
}

// UsageTypeDTO is one usage type choice.
type UsageTypeDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FeedbackFormResponse is the initial feedback form with its choice lists.
type FeedbackFormResponse struct {
	Form            domain.Feedback `json:"form"`
	UsageTypes      []UsageTypeDTO  `json:"usageTypes"`
	ImprovementTags []string        `json:"improvementTags"`
	MaxRating       int             `json:"maxRating"`
}

// FeedbackAckResponse acknowledges a feedback submission and returns the reset form.
type FeedbackAckResponse struct {
	ID          string          `json:"id"`
	Message     string          `json:"message"`
	SubmittedAt time.Time       `json:"submittedAt"`
	Form        domain.Feedback `json:"form"`
}

// CriterionDTO is one ranking tab.
type CriterionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ResultsResponse is the results view with its criterion tabs.
type ResultsResponse struct {
	*domain.RedemptionResponse

	// Label is the title of the active criterion tab
	Label string `json:"label"`

	// Tabs lists every criterion in tab order
	Tabs []CriterionDTO `json:"tabs"`
}
