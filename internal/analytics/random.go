package analytics

import "math/rand/v2"

// RandomSource supplies the draws behind the synthetic figures.
// A *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// globalSource uses the math/rand/v2 top-level functions, which are safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// randomIn returns an integer in [lo, hi).
func randomIn(src RandomSource, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}
