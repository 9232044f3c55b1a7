package usecase

import (
	"math"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// ResultsView holds the option list and the selected criterion of one results page.
// Every mutation re-sorts synchronously. A ResultsView is per-request state and
// must not be shared between goroutines.
type ResultsView struct {
	options   []domain.RedemptionOption
	criterion domain.Criterion
}

// NewResultsView creates an empty view with the default criterion.
func NewResultsView() *ResultsView {
	return &ResultsView{
		options:   []domain.RedemptionOption{},
		criterion: domain.DefaultCriterion,
	}
}

// Load replaces the option list and applies the current criterion.
func (v *ResultsView) Load(options []domain.RedemptionOption) {
	v.options = SortOptions(options, v.criterion)
}

// SetCriterion switches the ordering and re-sorts the current list.
func (v *ResultsView) SetCriterion(c domain.Criterion) {
	v.criterion = c
	v.options = SortOptions(v.options, c)
}

// Criterion returns the active criterion.
func (v *ResultsView) Criterion() domain.Criterion {
	return v.criterion
}

// Options returns the current list with rank positions and badges.
func (v *ResultsView) Options() []domain.RankedOption {
	return domain.RankOptions(v.options)
}

// Summary returns the headline figures of the current list.
func (v *ResultsView) Summary() domain.ResultsSummary {
	return Summarize(v.options)
}

// Summarize computes the headline figures of a list: its size and best value per mile,
// the latter also in cents rounded to 2 decimals.
func Summarize(options []domain.RedemptionOption) domain.ResultsSummary {
	best := BestValuePerMile(options)
	return domain.ResultsSummary{
		OptionsFound:     len(options),
		BestValuePerMile: best,
		BestValueCents:   math.Round(best*100*100) / 100,
	}
}
