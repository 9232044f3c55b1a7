package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rove-rewards/redemption-optimizer/internal/adapter/feedback"
	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/logger"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/random"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/timeutil"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
	"github.com/rove-rewards/redemption-optimizer/test/mock"
	"github.com/rove-rewards/redemption-optimizer/test/testutil"
)

// CreateUseCase wires a search use case to the given random source.
func CreateUseCase(rng domain.RandomSource) usecase.RedemptionSearchUseCase {
	return usecase.NewRedemptionSearchUseCase(usecase.NewSynthesizer(rng))
}

// =====================================================
// Search
// =====================================================

// TestRedemptionSearch_FixedDraw checks the full option list for a known base value.
func TestRedemptionSearch_FixedDraw(t *testing.T) {
	// Arrange
	rng := mock.NewRandomSource().WithValues(mock.DrawForBase(0.02))
	uc := CreateUseCase(rng)
	query := testutil.MustQuery(t, "BOS", "SFO", 50000)

	// Act
	result, err := uc.Search(context.Background(), query, usecase.DefaultSearchOptions())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.CriterionValue, result.Criterion)
	assert.Equal(t, []int{2, 4, 1, 3}, testutil.RankedIDs(result.Options))
	assert.Equal(t, 4, result.Summary.OptionsFound)
	assert.InDelta(t, 0.03, result.Summary.BestValuePerMile, 1e-9)
	assert.InDelta(t, 3.0, result.Summary.BestValueCents, 1e-9)
	assert.Equal(t, 1, rng.CallCount())

	first := result.Options[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, domain.BestValueBadge, first.Badge)
	assert.Equal(t, "#2", result.Options[1].Badge)
	assert.Equal(t, "BOS", first.Route[0])
	assert.Equal(t, "SFO", first.Route[len(first.Route)-1])
}

// TestRedemptionSearch_SeededDeterminism verifies the same seed yields the same results.
func TestRedemptionSearch_SeededDeterminism(t *testing.T) {
	// Arrange
	query := testutil.MustQuery(t, "JFK", "LAX", 80000)
	first := CreateUseCase(random.NewSource(42))
	second := CreateUseCase(random.NewSource(42))

	for i := 0; i < 5; i++ {
		// Act
		a, errA := first.Search(context.Background(), query, usecase.SearchOptions{})
		b, errB := second.Search(context.Background(), query, usecase.SearchOptions{})

		// Assert
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b, "draw %d differs", i)
	}
}

// TestRedemptionSearch_InvariantsAcrossSeeds checks the synthesis rules hold for any draw.
func TestRedemptionSearch_InvariantsAcrossSeeds(t *testing.T) {
	query := testutil.MustQuery(t, "ORD", "MIA", 60000)
	fractions := map[int]float64{}
	for _, a := range usecase.Archetypes() {
		fractions[a.ID] = a.MilesFraction
	}

	for seed := uint64(1); seed <= 200; seed++ {
		uc := CreateUseCase(random.NewSource(seed))

		result, err := uc.Search(context.Background(), query, usecase.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, result.Options, 4)

		assert.ElementsMatch(t, []int{1, 2, 3, 4}, testutil.RankedIDs(result.Options))
		for i, o := range result.Options {
			assert.Equal(t, i+1, o.Rank)
			assert.InDelta(t, 60000*fractions[o.ID], o.MilesRequired, 1e-6)
			assert.Equal(t, domain.DefaultCurrency, o.Currency)
			if i > 0 {
				assert.GreaterOrEqual(t, result.Options[i-1].ValuePerMile, o.ValuePerMile,
					"seed %d not sorted by value", seed)
			}
		}

		// The strongest archetype multiplier is 1.5, so the best value stays in [0.015, 0.045).
		assert.GreaterOrEqual(t, result.Summary.BestValuePerMile, 0.015)
		assert.Less(t, result.Summary.BestValuePerMile, 0.045)
		assert.InDelta(t, result.Summary.BestValuePerMile*100, result.Summary.BestValueCents, 0.005)
	}
}

// TestRedemptionSearch_AllCriteria checks each ordering against the same synthesis.
func TestRedemptionSearch_AllCriteria(t *testing.T) {
	tests := []struct {
		criterion domain.Criterion
		expected  []int
	}{
		{domain.CriterionValue, []int{2, 4, 1, 3}},
		{domain.CriterionFees, []int{1, 3, 2, 4}},
		{domain.CriterionSavings, []int{2, 4, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			// Arrange
			uc := CreateUseCase(mock.NewRandomSource())
			query := testutil.MustQuery(t, "BOS", "SFO", 50000)

			// Act
			result, err := uc.Search(context.Background(), query, usecase.SearchOptions{Criterion: tt.criterion})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.criterion, result.Criterion)
			assert.Equal(t, tt.expected, testutil.RankedIDs(result.Options))
		})
	}
}

// TestRedemptionSearch_WithFilters verifies filters shrink the list and the summary follows.
func TestRedemptionSearch_WithFilters(t *testing.T) {
	tests := []struct {
		name     string
		filters  *domain.FilterOptions
		expected []int
	}{
		{
			name:     "direct only",
			filters:  &domain.FilterOptions{IncludeSynthetic: testutil.BoolPtr(false)},
			expected: []int{1, 3},
		},
		{
			name:     "fees capped",
			filters:  &domain.FilterOptions{MaxFees: testutil.FloatPtr(40)},
			expected: []int{1, 3},
		},
		{
			name:     "minimum value",
			filters:  &domain.FilterOptions{MinValueCents: testutil.FloatPtr(2.5)},
			expected: []int{2, 4},
		},
		{
			name:     "nothing matches",
			filters:  &domain.FilterOptions{MinValueCents: testutil.FloatPtr(10)},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc := CreateUseCase(mock.NewRandomSource())
			query := testutil.MustQuery(t, "BOS", "SFO", 50000)

			// Act
			result, err := uc.Search(context.Background(), query, usecase.SearchOptions{Filters: tt.filters})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, testutil.RankedIDs(result.Options))
			assert.Equal(t, len(tt.expected), result.Summary.OptionsFound)
			if len(tt.expected) == 0 {
				assert.Zero(t, result.Summary.BestValuePerMile)
			}
		})
	}
}

// TestRedemptionSearch_InvalidQuery verifies malformed queries never reach the synthesizer.
func TestRedemptionSearch_InvalidQuery(t *testing.T) {
	// Arrange
	rng := mock.NewRandomSource()
	uc := CreateUseCase(rng)
	query := domain.SearchQuery{Origin: "BOS", Destination: "BOS", Miles: 50000}

	// Act
	result, err := uc.Search(context.Background(), query, usecase.SearchOptions{})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.Equal(t, 0, rng.CallCount())
}

// TestRedemptionSearch_ContextCancelled verifies a cancelled context short-circuits the search.
func TestRedemptionSearch_ContextCancelled(t *testing.T) {
	// Arrange
	rng := mock.NewRandomSource()
	uc := CreateUseCase(rng)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	result, err := uc.Search(ctx, testutil.MustQuery(t, "BOS", "SFO", 50000), usecase.SearchOptions{})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, rng.CallCount())
}

// =====================================================
// Rank
// =====================================================

// TestRedemptionRank_ReordersWithoutDrawing verifies ranking a list does not synthesize.
func TestRedemptionRank_ReordersWithoutDrawing(t *testing.T) {
	// Arrange
	rng := mock.NewRandomSource()
	uc := CreateUseCase(rng)
	options := usecase.Build("BOS", "SFO", 50000, 0.02)

	// Act
	ranked, err := uc.Rank(context.Background(), options, domain.CriterionFees)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 4}, testutil.RankedIDs(ranked))
	assert.Equal(t, 0, rng.CallCount())
	assert.Equal(t, []int{2, 4, 1, 3}, testutil.OptionIDs(options), "input must not be reordered")
}

// TestRedemptionRank_ContextCancelled verifies Rank honours cancellation.
func TestRedemptionRank_ContextCancelled(t *testing.T) {
	// Arrange
	uc := CreateUseCase(mock.NewRandomSource())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	ranked, err := uc.Rank(ctx, usecase.Build("BOS", "SFO", 50000, 0.02), domain.CriterionValue)

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ranked)
}

// =====================================================
// Feedback
// =====================================================

// TestFeedback_LogSinkRoundTrip submits through the real sink and checks the log entry.
func TestFeedback_LogSinkRoundTrip(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "info", Format: "json"}, &buf)
	uc := usecase.NewFeedbackUseCase(feedback.NewLogSink(log), timeutil.NewMockClockFromString(TestClockTime))

	input := domain.Feedback{
		Name:         "  Sam  ",
		Email:        "sam@example.com",
		Rating:       5,
		UsageType:    domain.UsagePlanning,
		Message:      "Great tool",
		Improvements: []string{"More airlines", "More airlines", "Loading speed"},
		Recommend:    true,
	}

	// Act
	submission, err := uc.Submit(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, submission)
	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, "Sam", submission.Feedback.Name)
	assert.Equal(t, []string{"More airlines", "Loading speed"}, submission.Feedback.Improvements)

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "Feedback received", entry["message"])
	assert.Equal(t, submission.ID, entry["submission_id"])
	assert.Equal(t, "s***@example.com", entry["email"])
	assert.NotContains(t, line, "sam@example.com")
}

// TestFeedback_InvalidNeverReachesSink verifies rejected feedback is not recorded.
func TestFeedback_InvalidNeverReachesSink(t *testing.T) {
	// Arrange
	sink := mock.NewFeedbackSink()
	uc := usecase.NewFeedbackUseCase(sink, timeutil.NewMockClockFromString(TestClockTime))

	// Act
	submission, err := uc.Submit(context.Background(), domain.Feedback{Rating: 9, Email: "nope"})

	// Assert
	require.Error(t, err)
	assert.Nil(t, submission)
	assert.ErrorIs(t, err, domain.ErrInvalidFeedback)

	var verr *usecase.FeedbackValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "feedback")
	assert.Contains(t, verr.Fields, "rating")
	assert.Contains(t, verr.Fields, "email")
	assert.Equal(t, 0, sink.CallCount())
}
