// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// FloatPtr returns a pointer to a float64, for fee and value filters.
func FloatPtr(f float64) *float64 {
	return &f
}

// BoolPtr returns a pointer to a bool, for the layover filter.
func BoolPtr(b bool) *bool {
	return &b
}

// OptionIDs returns the IDs of options in list order.
func OptionIDs(options []domain.RedemptionOption) []int {
	ids := make([]int, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return ids
}

// RankedIDs returns the IDs of ranked options in list order.
func RankedIDs(options []domain.RankedOption) []int {
	ids := make([]int, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return ids
}

// MustQuery builds a validated search query. It fails the test if the values are rejected.
func MustQuery(t *testing.T, origin, destination string, miles int) domain.SearchQuery {
	t.Helper()
	q := domain.SearchQuery{Origin: origin, Destination: destination, Miles: miles}
	if err := q.Validate(); err != nil {
		t.Fatalf("Invalid query %s-%s %d: %v", origin, destination, miles, err)
	}
	return q
}
