package core

import (
	"math"
	"math/rand/v2"
	"sync"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Methods are safe for concurrent use.
type RNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Angle returns a uniformly distributed angle in radians in [0, 2π).
func (r *RNG) Angle() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64() * 2 * math.Pi
}

