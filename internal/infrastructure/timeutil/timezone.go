// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// Timezones of the popular airports, plus UTC.
const (
	// UTC is the Coordinated Universal Time.
	UTC = "UTC"

	// Eastern is US Eastern Time (Boston, New York).
	Eastern = "America/New_York"

	// Pacific is US Pacific Time (San Francisco, Los Angeles).
	Pacific = "America/Los_Angeles"

	// London is UK time (Heathrow).
	London = "Europe/London"

	// Paris is Central European Time (Charles de Gaulle).
	Paris = "Europe/Paris"

	// Tokyo is Japan Standard Time (Haneda).
	Tokyo = "Asia/Tokyo"

	// Dubai is Gulf Standard Time.
	Dubai = "Asia/Dubai"
)

// airportTimezones maps popular airport codes to their timezone names.
var airportTimezones = map[string]string{
	"BOS": Eastern,
	"JFK": Eastern,
	"SFO": Pacific,
	"LAX": Pacific,
	"LHR": London,
	"CDG": Paris,
	"HND": Tokyo,
	"DXB": Dubai,
}

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// AirportTimezone returns the timezone name of a popular airport.
// The second result is false for airports outside the catalogue.
func AirportTimezone(code string) (string, bool) {
	tz, ok := airportTimezones[code]
	return tz, ok
}

// InTimezone converts a time to the specified timezone.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// TodayIn returns the start of the current calendar day in the specified timezone.
func TodayIn(clock Clock, timezone string) (time.Time, error) {
	now, err := InTimezone(clock.Now(), timezone)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(now), nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
