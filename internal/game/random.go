package game

import "math/rand"

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded uniform generator
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
