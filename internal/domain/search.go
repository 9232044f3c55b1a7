package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used on the wire (e.g., "2025-06-01").
const DateLayout = "2006-01-02"

// Query parameter names shared by the search intake and the results view.
const (
	ParamOrigin      = "origin"
	ParamDestination = "destination"
	ParamDepartDate  = "departDate"
	ParamReturnDate  = "returnDate"
	ParamMiles       = "miles"
	ParamCriterion   = "criterion"
)

// ResultsBasePath is the results view a submitted search is sent to.
const ResultsBasePath = "/api/v1/redemptions"

// airportCodeRegex matches IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchForm is the home page search state, holding values exactly as entered.
// A zero SearchForm is the initial empty form.
type SearchForm struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate"`
	Miles       string `json:"miles"`
}

// CanSubmit reports whether every required field has a value.
// It checks presence only; Submit performs the format checks.
func (f *SearchForm) CanSubmit() bool {
	return len(f.MissingFields()) == 0
}

// MissingFields returns the parameter names of required fields that are still empty.
func (f *SearchForm) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(f.Origin) == "" {
		missing = append(missing, ParamOrigin)
	}
	if strings.TrimSpace(f.Destination) == "" {
		missing = append(missing, ParamDestination)
	}
	if strings.TrimSpace(f.DepartDate) == "" {
		missing = append(missing, ParamDepartDate)
	}
	if strings.TrimSpace(f.Miles) == "" {
		missing = append(missing, ParamMiles)
	}
	return missing
}

// Reset clears the form back to its initial empty values.
func (f *SearchForm) Reset() {
	*f = SearchForm{}
}

// Submit turns a complete form into a SearchQuery.
// Dates are read as calendar dates in loc; nil means UTC.
func (f *SearchForm) Submit(loc *time.Location) (SearchQuery, error) {
	if missing := f.MissingFields(); len(missing) > 0 {
		return SearchQuery{}, fmt.Errorf("%w: missing %s", ErrIncompleteSearch, strings.Join(missing, ", "))
	}
	return f.ToQuery(loc)
}

// ToQuery parses the form values without requiring a departure date.
// The results view accepts queries without dates, the intake does not.
func (f *SearchForm) ToQuery(loc *time.Location) (SearchQuery, error) {
	q := SearchQuery{
		Origin:      strings.ToUpper(strings.TrimSpace(f.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(f.Destination)),
	}

	miles, err := ParseMiles(f.Miles)
	if err != nil {
		return SearchQuery{}, err
	}
	q.Miles = miles

	if strings.TrimSpace(f.DepartDate) != "" {
		d, err := ParseCalendarDate(f.DepartDate, loc)
		if err != nil {
			return SearchQuery{}, fmt.Errorf("%w: departDate: %v", ErrInvalidRequest, err)
		}
		q.DepartDate = d
	}

	if strings.TrimSpace(f.ReturnDate) != "" {
		d, err := ParseCalendarDate(f.ReturnDate, loc)
		if err != nil {
			return SearchQuery{}, fmt.Errorf("%w: returnDate: %v", ErrInvalidRequest, err)
		}
		q.ReturnDate = &d
	}

	if err := q.Validate(); err != nil {
		return SearchQuery{}, err
	}
	return q, nil
}

// SearchQuery is a submitted search. It is passed by value and never mutated.
type SearchQuery struct {
	// Origin is the IATA code of the departure airport (e.g., "BOS")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "SFO")
	Destination string `json:"destination"`

	// DepartDate is the departure calendar date; zero when not given
	DepartDate time.Time `json:"-"`

	// ReturnDate is the optional return calendar date
	ReturnDate *time.Time `json:"-"`

	// Miles is the number of miles the traveler wants to redeem
	Miles int `json:"miles"`
}

// Validate checks the invariants of a parsed query.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q SearchQuery) Validate() error {
	if !airportCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	if q.Miles < 1 {
		return fmt.Errorf("%w: miles must be a positive integer", ErrInvalidRequest)
	}
	if q.ReturnDate != nil && !q.DepartDate.IsZero() && q.ReturnDate.Before(q.DepartDate) {
		return fmt.Errorf("%w: returnDate must not be before departDate", ErrInvalidRequest)
	}
	return nil
}

// IsRoundTrip reports whether a return date was given.
func (q SearchQuery) IsRoundTrip() bool {
	return q.ReturnDate != nil
}

// DepartDateString returns the departure date in DateLayout, or "" when absent.
func (q SearchQuery) DepartDateString() string {
	if q.DepartDate.IsZero() {
		return ""
	}
	return q.DepartDate.Format(DateLayout)
}

// ReturnDateString returns the return date in DateLayout, or "" for one-way trips.
func (q SearchQuery) ReturnDateString() string {
	if q.ReturnDate == nil {
		return ""
	}
	return q.ReturnDate.Format(DateLayout)
}

// QueryParams serializes the query into the shareable parameter set read by the results view.
func (q SearchQuery) QueryParams() url.Values {
	v := url.Values{}
	v.Set(ParamOrigin, q.Origin)
	v.Set(ParamDestination, q.Destination)
	v.Set(ParamDepartDate, q.DepartDateString())
	v.Set(ParamReturnDate, q.ReturnDateString())
	v.Set(ParamMiles, strconv.Itoa(q.Miles))
	return v
}

// ResultsPath returns the results view path carrying the query as parameters.
func (q SearchQuery) ResultsPath() string {
	return ResultsBasePath + "?" + q.QueryParams().Encode()
}

// ParseMiles parses a mile count. Only positive whole numbers are accepted.
func ParseMiles(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: miles is required", ErrIncompleteSearch)
	}
	miles, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: miles must be a whole number, got %q", ErrInvalidRequest, s)
	}
	if miles < 1 {
		return 0, fmt.Errorf("%w: miles must be a positive integer", ErrInvalidRequest)
	}
	return miles, nil
}

// ParseCalendarDate reads either an ISO date ("2025-06-01") or an RFC 3339 timestamp.
// Timestamps are converted to loc before the date is taken, so a late-evening local pick
// does not roll over to the next UTC day. A nil loc means UTC.
func ParseCalendarDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)

	if d, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return d, nil
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	local := ts.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc), nil
}
