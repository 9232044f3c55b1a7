package usecase

import (
	"context"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// RedemptionSearchUseCase defines the results view operations.
type RedemptionSearchUseCase interface {
	// Search synthesizes options for a validated query and returns the ranked results view.
	Search(ctx context.Context, query domain.SearchQuery, opts SearchOptions) (*domain.RedemptionResponse, error)

	// Rank re-orders a client-held option list without synthesizing new options.
	Rank(ctx context.Context, options []domain.RedemptionOption, criterion domain.Criterion) ([]domain.RankedOption, error)
}

// redemptionSearchUseCase implements RedemptionSearchUseCase with a Synthesizer.
type redemptionSearchUseCase struct {
	synthesizer *Synthesizer
}

// NewRedemptionSearchUseCase creates a RedemptionSearchUseCase backed by the given synthesizer.
func NewRedemptionSearchUseCase(synthesizer *Synthesizer) RedemptionSearchUseCase {
	return &redemptionSearchUseCase{synthesizer: synthesizer}
}

// Search implements RedemptionSearchUseCase.Search.
func (uc *redemptionSearchUseCase) Search(ctx context.Context, query domain.SearchQuery, opts SearchOptions) (*domain.RedemptionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criterion := opts.Criterion
	if criterion == "" {
		criterion = domain.DefaultCriterion
	}

	synthesized := uc.synthesizer.Synthesize(query.Origin, query.Destination, query.Miles)
	filtered := ApplyFilters(synthesized, opts.Filters)

	view := NewResultsView()
	view.SetCriterion(criterion)
	view.Load(filtered)

	return &domain.RedemptionResponse{
		Search:    domain.NewSearchEcho(query),
		Criterion: view.Criterion(),
		Summary:   view.Summary(),
		Options:   view.Options(),
	}, nil
}

// Rank implements RedemptionSearchUseCase.Rank.
func (uc *redemptionSearchUseCase) Rank(ctx context.Context, options []domain.RedemptionOption, criterion domain.Criterion) ([]domain.RankedOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := NewResultsView()
	view.SetCriterion(criterion)
	view.Load(options)
	return view.Options(), nil
}

// Ensure redemptionSearchUseCase implements RedemptionSearchUseCase at compile time.
var _ RedemptionSearchUseCase = (*redemptionSearchUseCase)(nil)
