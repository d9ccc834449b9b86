package game

import (
	"math"
	"math/rand"
	"time"
)

// Random draws the spawn attributes. It is not safe for concurrent use,
// which matches the single-threaded frame model.
type Random struct {
	rng *rand.Rand
}

// NewRandom seeds a generator; seed 0 means "seed from the clock".
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Unit returns a uniform float in [0,1).
func (r *Random) Unit() float64 { return r.rng.Float64() }

// Range returns a uniform float in [min,max).
func (r *Random) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	v := r.Unit()*(max-min) + min
	// rounding can land exactly on max for wide ranges
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}

// Intn returns a uniform int in [0,n).
func (r *Random) Intn(n int) int { return r.rng.Intn(n) }

// Duration returns a uniform duration in [min,max).
func (r *Random) Duration(min, max time.Duration) time.Duration {
	return time.Duration(r.Range(float64(min), float64(max)))
}
