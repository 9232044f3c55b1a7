package usecase

import "github.com/rove-rewards/redemption-optimizer/internal/domain"

// ApplyFilters applies the given filter options to a list of redemption options.
// It returns a new slice containing only options that match all filter criteria.
//
// Behavior:
//   - Returns the original slice if opts is nil or empty (no filtering)
//   - Nil/empty filter values are skipped (no filtering on that criterion)
//   - Does NOT mutate the original options slice
//
// Example usage:
//
//	directOnly := false
//	opts := &domain.FilterOptions{IncludeSynthetic: &directOnly}
//	filtered := ApplyFilters(options, opts)
func ApplyFilters(options []domain.RedemptionOption, opts *domain.FilterOptions) []domain.RedemptionOption {
	if opts.IsEmpty() {
		return options
	}

	result := make([]domain.RedemptionOption, 0, len(options))
	for _, o := range options {
		if opts.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}
