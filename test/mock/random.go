// Package mock provides test doubles for the redemption optimizer.
// These mocks are designed for integration testing where we need
// configurable behavior (fixed draws, errors, recorded calls).
package mock

import (
	"sync"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// RandomSource is a configurable mock implementation of domain.RandomSource.
// It replays the configured draws in order and wraps around at the end.
// It is safe for concurrent use.
type RandomSource struct {
	values    []float64
	next      int
	callCount int
	mu        sync.Mutex
}

// NewRandomSource creates a mock source that always draws 0.5.
// The source is configured using the builder pattern methods.
func NewRandomSource() *RandomSource {
	return &RandomSource{
		values: []float64{0.5},
	}
}

// WithValues configures the draws to replay. Values must lie in [0, 1).
func (r *RandomSource) WithValues(values ...float64) *RandomSource {
	if len(values) == 0 {
		return r
	}
	r.values = append([]float64(nil), values...)
	r.next = 0
	return r
}

// Float64 implements domain.RandomSource.Float64.
func (r *RandomSource) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.callCount++
	v := r.values[r.next]
	r.next = (r.next + 1) % len(r.values)
	return v
}

// CallCount returns the number of draws taken.
func (r *RandomSource) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.callCount
}

// Reset rewinds the replay and resets the call count to zero.
func (r *RandomSource) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next = 0
	r.callCount = 0
}

// Ensure RandomSource implements domain.RandomSource at compile time.
var _ domain.RandomSource = (*RandomSource)(nil)

// DrawForBase returns the draw that yields the given base value per mile.
// Base values are 0.01 + 0.02 * draw.
func DrawForBase(base float64) float64 {
	return (base - 0.01) / 0.02
}
