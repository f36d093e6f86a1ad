package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Each generation run owns its own RNG; nothing here touches the global source.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Point draws an x coordinate in [0, w) followed by a y coordinate in [0, h).
// Exactly two draws are consumed, in that order.
func (r *RNG) Point(w, h int) (int, int) {
	x := r.IntN(w)
	y := r.IntN(h)
	return x, y
}
