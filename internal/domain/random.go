package domain

//go:generate mockgen -source=random.go -destination=random_mock.go -package=domain

// RandomSource supplies the random base value used when synthesizing redemption options.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}
