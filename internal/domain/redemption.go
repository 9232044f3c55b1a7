// Package domain contains the core entities of the redemption optimizer.
// Everything here is plain data and rules with no I/O, shared by the use case and HTTP layers.
package domain

import "strings"

// OptionType classifies a redemption option by its routing.
type OptionType string

// Available option types.
const (
	// OptionTypeDirect is a non-stop itinerary between origin and destination.
	OptionTypeDirect OptionType = "Direct Flight"

	// OptionTypeSynthetic is a fabricated itinerary connecting through a hub airport.
	OptionTypeSynthetic OptionType = "Synthetic Route"
)

// DefaultCurrency is the currency used for every cash amount in a redemption option.
const DefaultCurrency = "USD"

// routeSeparator joins airport codes in a human-readable route.
const routeSeparator = " → "

// RedemptionOption is a single way to spend miles on a trip.
type RedemptionOption struct {
	// ID identifies the option within one result list (1-based, stable per archetype)
	ID int `json:"id"`

	// Type tells whether the option is a direct flight or a synthetic route
	Type OptionType `json:"type"`

	// Route is the ordered list of airport codes, origin first
	Route []string `json:"route"`

	// RouteDisplay is Route joined with arrows (e.g., "BOS → DXB → SFO")
	RouteDisplay string `json:"routeDisplay"`

	// MilesRequired is the share of the requested miles this option consumes
	MilesRequired float64 `json:"milesRequired"`

	// CashPrice is what the same ticket would cost in cash
	CashPrice float64 `json:"cashPrice"`

	// ValuePerMile is the cash value attributed to each mile, in dollars
	ValuePerMile float64 `json:"valuePerMile"`

	// Fees are the taxes and carrier charges still paid in cash
	Fees float64 `json:"fees"`

	// Currency is the ISO 4217 code of CashPrice, Fees and Savings
	Currency string `json:"currency"`

	// Airline is the operating carrier name
	Airline string `json:"airline"`

	// Duration is the total travel time
	Duration DurationInfo `json:"duration"`

	// Savings is the amount saved compared with paying cash
	Savings float64 `json:"savings"`

	// Rating is a 1-5 star quality rating
	Rating int `json:"rating"`
}

// IsDirect reports whether the option flies non-stop.
func (o RedemptionOption) IsDirect() bool {
	return o.Type == OptionTypeDirect
}

// Stops returns the number of intermediate airports on the route.
func (o RedemptionOption) Stops() int {
	if len(o.Route) < 2 {
		return 0
	}
	return len(o.Route) - 2
}

// ValueCentsPerMile returns ValuePerMile expressed in cents.
func (o RedemptionOption) ValueCentsPerMile() float64 {
	return o.ValuePerMile * 100
}

// BuildRoute returns the ordered airport codes from origin to destination through the given hubs.
func BuildRoute(origin, destination string, hubs ...string) []string {
	route := make([]string, 0, len(hubs)+2)
	route = append(route, origin)
	route = append(route, hubs...)
	return append(route, destination)
}

// FormatRoute joins airport codes with arrows.
func FormatRoute(route []string) string {
	return strings.Join(route, routeSeparator)
}

// DurationInfo contains travel duration information.
type DurationInfo struct {
	// TotalMinutes is the total travel duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "5h 30m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	if hours > 0 && mins > 0 {
		formatted = formatDuration(hours, mins)
	} else if hours > 0 {
		formatted = formatHoursOnly(hours)
	} else {
		formatted = formatMinutesOnly(mins)
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}

// formatDuration formats hours and minutes as "Xh Ym".
func formatDuration(hours, mins int) string {
	return intToString(hours) + "h " + intToString(mins) + "m"
}

// formatHoursOnly formats hours as "Xh".
func formatHoursOnly(hours int) string {
	return intToString(hours) + "h"
}

// formatMinutesOnly formats minutes as "Xm".
func formatMinutesOnly(mins int) string {
	return intToString(mins) + "m"
}

// intToString converts a non-negative integer to its decimal form.
func intToString(n int) string {
	if n == 0 {
		return "0"
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
