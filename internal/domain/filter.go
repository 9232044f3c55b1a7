package domain

import "strings"

// FilterOptions narrows a synthesized option list before ranking.
// A nil FilterOptions, or one with every field unset, keeps every option.
type FilterOptions struct {
	// IncludeSynthetic keeps layover (synthetic route) options when true or unset.
	// Set to false for direct flights only.
	IncludeSynthetic *bool `json:"includeSynthetic,omitempty"`

	// MaxFees filters out options with cash fees above this amount
	MaxFees *float64 `json:"maxFees,omitempty"`

	// MinValueCents filters out options worth less than this many cents per mile
	MinValueCents *float64 `json:"minValueCents,omitempty"`

	// Airlines keeps only options operated by these carriers (case-insensitive).
	// Empty slice means no filtering by airline.
	Airlines []string `json:"airlines,omitempty"`
}

// IsEmpty reports whether no filter criterion is set.
func (f *FilterOptions) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.IncludeSynthetic == nil && f.MaxFees == nil && f.MinValueCents == nil && len(f.Airlines) == 0
}

// Matches checks if an option passes all filter criteria.
func (f *FilterOptions) Matches(o RedemptionOption) bool {
	if f == nil {
		return true
	}

	if f.IncludeSynthetic != nil && !*f.IncludeSynthetic && !o.IsDirect() {
		return false
	}

	if f.MaxFees != nil && o.Fees > *f.MaxFees {
		return false
	}

	if f.MinValueCents != nil && o.ValueCentsPerMile() < *f.MinValueCents {
		return false
	}

	if len(f.Airlines) > 0 {
		found := false
		for _, name := range f.Airlines {
			if strings.EqualFold(strings.TrimSpace(name), o.Airline) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
