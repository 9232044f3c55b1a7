package domain

import "strings"

// Criterion selects how the results view orders redemption options.
type Criterion string

// Available ranking criteria.
const (
	// CriterionValue sorts by value per mile descending (default)
	CriterionValue Criterion = "value"

	// CriterionFees sorts by cash fees ascending (cheapest first)
	CriterionFees Criterion = "fees"

	// CriterionSavings sorts by savings descending (largest first)
	CriterionSavings Criterion = "savings"
)

// DefaultCriterion is applied when the caller does not pick one.
const DefaultCriterion = CriterionValue

// IsValid checks if the criterion is one of the known values.
func (c Criterion) IsValid() bool {
	switch c {
	case CriterionValue, CriterionFees, CriterionSavings:
		return true
	default:
		return false
	}
}

// Label returns the tab title shown for the criterion.
func (c Criterion) Label() string {
	switch c {
	case CriterionValue:
		return "Maximize Value"
	case CriterionFees:
		return "Minimize Fees"
	case CriterionSavings:
		return "Maximum Savings"
	default:
		return string(c)
	}
}

// ParseCriterion converts a raw query value to a Criterion.
// An empty value yields DefaultCriterion. Unknown values are kept as-is:
// ranking treats them as "leave the order unchanged".
func ParseCriterion(s string) Criterion {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultCriterion
	}
	return Criterion(s)
}

// Criteria lists every known criterion in tab order.
func Criteria() []Criterion {
	return []Criterion{CriterionValue, CriterionFees, CriterionSavings}
}
