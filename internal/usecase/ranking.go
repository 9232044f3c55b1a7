package usecase

import (
	"sort"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// SortOptions orders redemption options by the given criterion.
// Uses stable sorting so ties keep their incoming order.
//
// Criteria:
//   - CriterionValue: descending by ValuePerMile (best value first)
//   - CriterionFees: ascending by Fees (cheapest first)
//   - CriterionSavings: descending by Savings (largest first)
//
// Behavior:
//   - Any other criterion leaves the order unchanged
//   - Does NOT mutate the original options slice
func SortOptions(options []domain.RedemptionOption, criterion domain.Criterion) []domain.RedemptionOption {
	result := make([]domain.RedemptionOption, len(options))
	copy(result, options)

	if len(result) <= 1 {
		return result
	}

	switch criterion {
	case domain.CriterionValue:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ValuePerMile > result[j].ValuePerMile
		})
	case domain.CriterionFees:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Fees < result[j].Fees
		})
	case domain.CriterionSavings:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Savings > result[j].Savings
		})
	}

	return result
}

// BestValuePerMile returns the highest value per mile among options, or 0 for an empty list.
func BestValuePerMile(options []domain.RedemptionOption) float64 {
	var best float64
	for i, o := range options {
		if i == 0 || o.ValuePerMile > best {
			best = o.ValuePerMile
		}
	}
	return best
}
