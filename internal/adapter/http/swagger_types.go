// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerResultsResponse represents the results view for swagger documentation.
// @Description Ranked redemption options for one search
type SwaggerResultsResponse struct {
	// Search echoes the query parameters the results were built from
	Search SwaggerSearchEcho `json:"search"`

	// Criterion is the ordering applied to Options
	Criterion string `json:"criterion" example:"value" enums:"value,fees,savings"`

	// Summary contains the headline figures shown above the list
	Summary SwaggerResultsSummary `json:"summary"`

	// Options is the ranked list, empty until origin, destination and miles are all given
	Options []SwaggerRankedOption `json:"options"`

	// Label is the title of the active criterion tab
	Label string `json:"label" example:"Maximize Value"`

	// Tabs lists every criterion in tab order
	Tabs []CriterionDTO `json:"tabs"`
}

// SwaggerSearchEcho is the query as shown back to the user.
// @Description Search parameters echoed back
type SwaggerSearchEcho struct {
	Origin      string `json:"origin" example:"BOS"`
	Destination string `json:"destination" example:"SFO"`
	DepartDate  string `json:"departDate" example:"2025-06-01"`
	ReturnDate  string `json:"returnDate" example:""`
	Miles       int    `json:"miles" example:"50000"`
}

// SwaggerResultsSummary contains the headline figures.
// @Description Aggregate figures of a result list
type SwaggerResultsSummary struct {
	// OptionsFound is the number of options in the list
	OptionsFound int `json:"optionsFound" example:"4"`

	// BestValuePerMile is the highest value per mile, in dollars
	BestValuePerMile float64 `json:"bestValuePerMile" example:"0.03"`

	// BestValueCents is BestValuePerMile in cents, rounded to 2 decimals
	BestValueCents float64 `json:"bestValueCents" example:"3"`
}

// SwaggerRankedOption represents one redemption option at its current position.
// @Description Redemption option with rank and badge
type SwaggerRankedOption struct {
	// ID identifies the option within one result list
	ID int `json:"id" example:"2"`

	// Type is "Direct Flight" or "Synthetic Route"
	Type string `json:"type" example:"Synthetic Route" enums:"Direct Flight,Synthetic Route"`

	// Route is the ordered list of airport codes
	Route []string `json:"route" example:"BOS,DXB,SFO"`

	// RouteDisplay is Route joined with arrows
	RouteDisplay string `json:"routeDisplay" example:"BOS → DXB → SFO"`

	// MilesRequired is the share of the requested miles this option consumes
	MilesRequired float64 `json:"milesRequired" example:"30000"`

	// CashPrice is what the same ticket would cost in cash
	CashPrice float64 `json:"cashPrice" example:"750"`

	// ValuePerMile is the cash value attributed to each mile, in dollars
	ValuePerMile float64 `json:"valuePerMile" example:"0.03"`

	// Fees are the taxes and carrier charges still paid in cash
	Fees float64 `json:"fees" example:"45"`

	// Currency is the ISO 4217 code of the amounts
	Currency string `json:"currency" example:"USD"`

	// Airline is the operating carrier
	Airline string `json:"airline" example:"Emirates"`

	// Duration is the total travel time
	Duration SwaggerDurationInfo `json:"duration"`

	// Savings is the amount saved compared with paying cash
	Savings float64 `json:"savings" example:"705"`

	// Rating is a 1-5 star quality rating
	Rating int `json:"rating" example:"4"`

	// Rank is the 1-based position under the active criterion
	Rank int `json:"rank" example:"1"`

	// Badge is "Best Value" for the first option and "#n" for the rest
	Badge string `json:"badge" example:"Best Value"`
}

// SwaggerDurationInfo contains travel duration information.
// @Description Travel duration
type SwaggerDurationInfo struct {
	// TotalMinutes is the total travel duration in minutes
	TotalMinutes int `json:"totalMinutes" example:"735"`

	// Formatted is a human-readable duration string
	Formatted string `json:"formatted" example:"12h 15m"`
}
