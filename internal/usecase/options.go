// Package usecase contains the business logic of the redemption optimizer:
// option synthesis, filtering, ranking and feedback intake.
package usecase

import "github.com/rove-rewards/redemption-optimizer/internal/domain"

// SearchOptions contains optional parameters for a redemption search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterOptions

	// Criterion specifies how to order the results (default: value)
	Criterion domain.Criterion
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters:   nil,
		Criterion: domain.DefaultCriterion,
	}
}
