// Package http provides the HTTP handler layer for the redemption optimizer API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
)

// maxRankOptions caps the size of a client-held list sent for re-ranking.
const maxRankOptions = 100

// airportCodePattern matches IATA airport codes after upper-casing.
var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// NumericText is a numeric form value sent either as a JSON string or a JSON number.
// The text is kept as-is so malformed values are reported on their field.
type NumericText string

// UnmarshalJSON accepts a string, a number or null.
func (n *NumericText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumericText(num.String())
	return nil
}

// String returns the value as entered.
func (n NumericText) String() string {
	return string(n)
}

// SearchRequest is the home page search form, as JSON or form-encoded fields.
// Every value is kept exactly as entered.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "BOS")
	Origin string `json:"origin" form:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "SFO")
	Destination string `json:"destination" form:"destination"`

	// DepartDate is the departure date in YYYY-MM-DD format
	DepartDate string `json:"departDate" form:"departDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate" form:"returnDate"`

	// Miles is the number of miles to redeem, as a JSON number or decimal string
	Miles NumericText `json:"miles" form:"miles" swaggertype:"string" example:"50000"`
}

// ToForm converts the request into the intake form state.
func (r *SearchRequest) ToForm() domain.SearchForm {
	return domain.SearchForm{
		Origin:      r.Origin,
		Destination: r.Destination,
		DepartDate:  r.DepartDate,
		ReturnDate:  r.ReturnDate,
		Miles:       r.Miles.String(),
	}
}

// Validate checks the submitted form and returns the parsed query.
// Missing required fields are reported first; format checks run only on a complete form.
func (r *SearchRequest) Validate(loc *time.Location) (domain.SearchQuery, error) {
	form := r.ToForm()

	if missing := form.MissingFields(); len(missing) > 0 {
		errs := &ValidationErrors{}
		for _, field := range missing {
			errs.Add(field, field+" is required")
		}
		return domain.SearchQuery{}, errs
	}

	errs := &ValidationErrors{}
	validateSearchFields(errs, r.Origin, r.Destination, r.DepartDate, r.ReturnDate, r.Miles.String(), loc)
	if errs.HasErrors() {
		return domain.SearchQuery{}, errs
	}

	return form.Submit(loc)
}

// RedemptionsQuery is the query string of the results view.
type RedemptionsQuery struct {
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
	DepartDate  string `query:"departDate"`
	ReturnDate  string `query:"returnDate"`
	Miles       string `query:"miles"`
	Criterion   string `query:"criterion"`

	// IncludeLayovers keeps synthetic routes when "true" (default), drops them when "false"
	IncludeLayovers string `query:"includeLayovers"`

	// MaxFees drops options with higher cash fees
	MaxFees string `query:"maxFees"`

	// MinValue drops options worth fewer cents per mile
	MinValue string `query:"minValue"`

	// Airlines is a comma-separated carrier list
	Airlines string `query:"airlines"`
}

// IsIncomplete reports whether a parameter needed to synthesize options is absent.
// The results view shows its empty placeholder in that case.
func (q *RedemptionsQuery) IsIncomplete() bool {
	return strings.TrimSpace(q.Origin) == "" ||
		strings.TrimSpace(q.Destination) == "" ||
		strings.TrimSpace(q.Miles) == ""
}

// Echo returns the query parameters as shown back to the user.
// Miles is 0 when it cannot be parsed.
func (q *RedemptionsQuery) Echo() domain.SearchEcho {
	miles, _ := strconv.Atoi(strings.TrimSpace(q.Miles))
	return domain.SearchEcho{
		Origin:      strings.ToUpper(strings.TrimSpace(q.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(q.Destination)),
		DepartDate:  q.DepartDate,
		ReturnDate:  q.ReturnDate,
		Miles:       miles,
	}
}

// Validate parses a complete results query into a search query and options.
// Unlike the intake, a departure date is optional here.
func (q *RedemptionsQuery) Validate(loc *time.Location) (domain.SearchQuery, usecase.SearchOptions, error) {
	errs := &ValidationErrors{}
	validateSearchFields(errs, q.Origin, q.Destination, q.DepartDate, q.ReturnDate, q.Miles, loc)
	filters := q.parseFilters(errs)
	if errs.HasErrors() {
		return domain.SearchQuery{}, usecase.SearchOptions{}, errs
	}

	form := domain.SearchForm{
		Origin:      q.Origin,
		Destination: q.Destination,
		DepartDate:  q.DepartDate,
		ReturnDate:  q.ReturnDate,
		Miles:       q.Miles,
	}
	query, err := form.ToQuery(loc)
	if err != nil {
		return domain.SearchQuery{}, usecase.SearchOptions{}, err
	}

	return query, ToSearchOptions(q.Criterion, filters), nil
}

// parseFilters reads the optional filter parameters.
func (q *RedemptionsQuery) parseFilters(errs *ValidationErrors) *domain.FilterOptions {
	f := &domain.FilterOptions{}

	if s := strings.TrimSpace(q.IncludeLayovers); s != "" {
		include, err := strconv.ParseBool(s)
		if err != nil {
			errs.Add("includeLayovers", "includeLayovers must be true or false")
		} else {
			f.IncludeSynthetic = &include
		}
	}

	f.MaxFees = parseNonNegative(errs, "maxFees", q.MaxFees)
	f.MinValueCents = parseNonNegative(errs, "minValue", q.MinValue)

	for _, name := range strings.Split(q.Airlines, ",") {
		if name = strings.TrimSpace(name); name != "" {
			f.Airlines = append(f.Airlines, name)
		}
	}

	if f.IsEmpty() {
		return nil
	}
	return f
}

// RankRequest re-orders a client-held option list under a new criterion.
type RankRequest struct {
	// Criterion is value, fees or savings; empty means value
	Criterion string `json:"criterion"`

	// Options is the list currently shown to the user
	Options []domain.RedemptionOption `json:"options"`
}

// Validate checks the rank request.
func (r *RankRequest) Validate() error {
	errs := &ValidationErrors{}
	if len(r.Options) > maxRankOptions {
		errs.Add("options", fmt.Sprintf("options cannot exceed %d entries", maxRankOptions))
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValueQuery is the query string of the value calculator.
type ValueQuery struct {
	CashPrice string `query:"cashPrice"`
	Miles     string `query:"miles"`
	Fees      string `query:"fees"`
}

// Validate parses the calculator inputs. Fees default to 0.
func (q *ValueQuery) Validate() (cashPrice, miles, fees float64, err error) {
	errs := &ValidationErrors{}

	if strings.TrimSpace(q.CashPrice) == "" {
		errs.Add("cashPrice", "cashPrice is required")
	} else if v := parseNonNegative(errs, "cashPrice", q.CashPrice); v != nil {
		cashPrice = *v
	}

	if strings.TrimSpace(q.Miles) == "" {
		errs.Add("miles", "miles is required")
	} else if v := parseNonNegative(errs, "miles", q.Miles); v != nil {
		miles = *v
	}

	if v := parseNonNegative(errs, "fees", q.Fees); v != nil {
		fees = *v
	}

	if errs.HasErrors() {
		return 0, 0, 0, errs
	}
	return cashPrice, miles, fees, nil
}

// FeedbackRequest is the submitted feedback form.
type FeedbackRequest struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Rating       NumericText `json:"rating" swaggertype:"integer" example:"4"`
	UsageType    string      `json:"usageType"`
	Feedback     string      `json:"feedback"`
	Improvements []string    `json:"improvements"`
	Recommend    bool        `json:"recommend"`
}

// ParseRating reads the star rating. Blank means not rated.
// A non-integer value is reported as a rating field error.
func (r *FeedbackRequest) ParseRating() (int, error) {
	raw := strings.TrimSpace(r.Rating.String())
	if raw == "" {
		return 0, nil
	}
	rating, err := strconv.Atoi(raw)
	if err != nil {
		errs := &ValidationErrors{}
		errs.Add("rating", fmt.Sprintf("rating must be a whole number between 1 and %d, or 0 for no rating", domain.MaxRating))
		return 0, errs
	}
	return rating, nil
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// The first message wins when a field fails more than one check.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, exists := result[e.Field]; !exists {
			result[e.Field] = e.Message
		}
	}
	return result
}

// validateSearchFields runs the format checks shared by the intake and the results view.
// Blank dates are skipped; callers decide whether a date is required.
func validateSearchFields(errs *ValidationErrors, origin, destination, departDate, returnDate, miles string, loc *time.Location) {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	destination = strings.ToUpper(strings.TrimSpace(destination))

	if !airportCodePattern.MatchString(origin) {
		errs.Add(domain.ParamOrigin, "origin must be a valid 3-letter IATA airport code")
	}
	if !airportCodePattern.MatchString(destination) {
		errs.Add(domain.ParamDestination, "destination must be a valid 3-letter IATA airport code")
	}
	if origin != "" && origin == destination {
		errs.Add(domain.ParamDestination, "origin and destination must be different")
	}

	var depart, ret time.Time
	var departOK, returnOK bool
	if strings.TrimSpace(departDate) != "" {
		d, err := domain.ParseCalendarDate(departDate, loc)
		if err != nil {
			errs.Add(domain.ParamDepartDate, "departDate must be in YYYY-MM-DD format")
		} else {
			depart, departOK = d, true
		}
	}
	if strings.TrimSpace(returnDate) != "" {
		d, err := domain.ParseCalendarDate(returnDate, loc)
		if err != nil {
			errs.Add(domain.ParamReturnDate, "returnDate must be in YYYY-MM-DD format")
		} else {
			ret, returnOK = d, true
		}
	}
	if departOK && returnOK && ret.Before(depart) {
		errs.Add(domain.ParamReturnDate, "returnDate must not be before departDate")
	}

	if _, err := domain.ParseMiles(miles); err != nil {
		errs.Add(domain.ParamMiles, "miles must be a positive whole number")
	}
}

// parseNonNegative parses an optional non-negative decimal. Blank yields nil.
func parseNonNegative(errs *ValidationErrors, field, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		errs.Add(field, field+" must be a non-negative number")
		return nil
	}
	return &v
}
