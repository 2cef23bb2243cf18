package quiz

import "math/rand/v2"

// Rand is the source of randomness consumed by the engine.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a deterministic PCG-backed source for the given seed.
// The returned generator is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// coinFlip returns true with probability one half.
func coinFlip(rng Rand) bool {
	return rng.IntN(2) == 0
}
