package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/random"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
	"github.com/rove-rewards/redemption-optimizer/test/mock"
	"github.com/rove-rewards/redemption-optimizer/test/testutil"
)

// TestConcurrent_MultipleResultsRequests tests that concurrent results views
// are handled correctly without interference.
func TestConcurrent_MultipleResultsRequests(t *testing.T) {
	// Arrange
	ts := NewTestServer(nil, nil)

	numRequests := 20
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.ResultsRequest(DefaultResultsQuery())
		}(i)
	}

	wg.Wait()

	// Assert - All requests should succeed with the same ranking
	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		view, err := results[i].ParseResults()
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 1, 3}, testutil.RankedIDs(view.Options), "request %d", i)
	}

	// One draw per synthesis
	assert.Equal(t, numRequests, ts.Random.CallCount())
}

// TestConcurrent_IndependentCriteria tests that each concurrent request
// receives the ordering of its own criterion.
func TestConcurrent_IndependentCriteria(t *testing.T) {
	ts := NewTestServer(nil, nil)

	want := map[string][]int{
		"value":   {2, 4, 1, 3},
		"fees":    {1, 3, 2, 4},
		"savings": {2, 4, 3, 1},
	}
	criteria := []string{"value", "fees", "savings"}

	numRequests := 30
	var wg sync.WaitGroup
	got := make([][]int, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.ResultsRequest(DefaultResultsQuery() + "&criterion=" + criteria[idx%len(criteria)])
			if view, err := resp.ParseResults(); err == nil {
				got[idx] = testutil.RankedIDs(view.Options)
			}
		}(i)
	}

	wg.Wait()

	for i := 0; i < numRequests; i++ {
		criterion := criteria[i%len(criteria)]
		assert.Equal(t, want[criterion], got[i], "request %d (%s)", i, criterion)
	}
}

// TestConcurrent_NoRaceCondition is designed to be run with -race flag.
// It drives every endpoint at once against the production random source.
func TestConcurrent_NoRaceCondition(t *testing.T) {
	// Arrange
	ts := NewTestServer(nil, nil)
	redemptions := usecase.NewRedemptionSearchUseCase(usecase.NewSynthesizer(random.NewSource(7)))
	query := testutil.MustQuery(t, "JFK", "LHR", 60000)

	numGoroutines := 60
	var wg sync.WaitGroup

	requests := []func(){
		func() { _ = ts.SearchRequest(DefaultSearchRequest()) },
		func() { _ = ts.ResultsRequest(DefaultResultsQuery() + "&criterion=fees") },
		func() { _ = ts.FeedbackRequest(map[string]interface{}{"feedback": "concurrent"}) },
		func() { _ = ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/feedback/form"}) },
		func() { _, _ = redemptions.Search(context.Background(), query, usecase.DefaultSearchOptions()) },
	}

	// Act
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			requests[idx%len(requests)]()
		}(i)
	}

	wg.Wait()

	// Assert - If we get here without race detector errors, test passes
	// The race detector will fail the test if races are found
	assert.Equal(t, numGoroutines/len(requests), ts.Sink.CallCount())
}

// TestConcurrent_FeedbackSubmissions tests that every concurrent submission
// is recorded once with its own ID.
func TestConcurrent_FeedbackSubmissions(t *testing.T) {
	ts := NewTestServer(nil, nil)

	numRequests := 40
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ts.FeedbackRequest(map[string]interface{}{
				"rating":   idx%5 + 1,
				"feedback": fmt.Sprintf("submission %d", idx),
			})
		}(i)
	}

	wg.Wait()

	records := ts.Sink.Records()
	require.Len(t, records, numRequests)

	ids := make(map[string]struct{}, numRequests)
	messages := make(map[string]struct{}, numRequests)
	for _, r := range records {
		ids[r.ID] = struct{}{}
		messages[r.Feedback.Message] = struct{}{}
	}
	assert.Len(t, ids, numRequests, "submission IDs must be unique")
	assert.Len(t, messages, numRequests, "submissions must not be mixed up")
}

// TestConcurrent_RandomSourceCallCountAccuracy tests that the mock source's
// call count is accurate under concurrent access.
func TestConcurrent_RandomSourceCallCountAccuracy(t *testing.T) {
	rng := mock.NewRandomSource().WithValues(0.1, 0.9)
	synthesizer := usecase.NewSynthesizer(rng)

	numCalls := 100
	var wg sync.WaitGroup
	var mu sync.Mutex
	bests := make(map[float64]int)

	for i := 0; i < numCalls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			options := synthesizer.Synthesize("BOS", "SFO", 50000)
			mu.Lock()
			bests[usecase.BestValuePerMile(options)]++
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Equal(t, numCalls, rng.CallCount())
	assert.Len(t, bests, 2, "only the two configured draws should appear")
	total := 0
	for _, n := range bests {
		total += n
	}
	assert.Equal(t, numCalls, total)
}

// TestConcurrent_HighLoadScenario simulates many users completing the search flow at once.
func TestConcurrent_HighLoadScenario(t *testing.T) {
	ts := NewTestServer(nil, nil)

	origins := []string{"BOS", "JFK", "LAX", "HND"}

	numRequests := 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	totalOptions := 0

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := DefaultSearchRequest()
			req.Origin = origins[idx%len(origins)]
			req.Miles = fmt.Sprintf("%d", 10000+idx*1000)

			redirect := ts.SearchRequest(req)
			if redirect.Code != http.StatusSeeOther {
				return
			}
			view, err := ts.FollowRedirect(redirect).ParseResults()
			if err != nil || view.Search.Origin != req.Origin {
				return
			}
			for _, o := range view.Options {
				if o.Route[0] != req.Origin || o.Route[len(o.Route)-1] != view.Search.Destination {
					return
				}
			}

			mu.Lock()
			successCount++
			totalOptions += len(view.Options)
			mu.Unlock()
		}(i)
	}

	wg.Wait()

	assert.Equal(t, numRequests, successCount, "all flows should succeed")
	assert.Equal(t, numRequests*4, totalOptions, "each search yields four options")
}
