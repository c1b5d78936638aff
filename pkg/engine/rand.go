package engine

import "math/rand"

// Rand is the engine's source of randomness. It is injected rather than
// global so full turns replay identically under a fixed sequence.
type Rand interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a seeded math/rand-backed source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// chance rolls a probability in [0,1]. Values >= 1 always pass.
func chance(rng Rand, p float64) bool {
	if p >= 1 {
		return true
	}
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}

// pick returns a uniform element of ids. Callers guarantee len > 0.
func pick[T any](rng Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
