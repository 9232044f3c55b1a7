// Package random provides the seeded random source used by the option synthesizer.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is a pseudo-random generator safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a Source. A zero seed draws one from the current time,
// any other seed yields a reproducible sequence.
func NewSource(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
