package mockdata

import (
	"math/rand/v2"
	"time"
)

// Random wraps a seeded PCG source with the draw helpers the generators use.
// It is not safe for concurrent use.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a Random seeded with seed. The same seed always yields
// the same sequence of draws.
func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntBetween returns an integer uniformly distributed in [min, max].
func (r *Random) IntBetween(min, max int) int {
	return min + r.r.IntN(max-min+1)
}

// Float64 returns a float in [0, 1).
func (r *Random) Float64() float64 {
	return r.r.Float64()
}

// Float64Between returns a float uniformly distributed in [min, max).
func (r *Random) Float64Between(min, max float64) float64 {
	return min + r.r.Float64()*(max-min)
}

// Chance reports true with probability p.
func (r *Random) Chance(p float64) bool {
	return r.r.Float64() < p
}

// DateBetween returns a time uniformly distributed in [start, end].
func (r *Random) DateBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(r.r.Int64N(int64(span) + 1)))
}

// Read fills p with random bytes so a Random can back uuid generation.
func (r *Random) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.r.Uint32())
	}
	return len(p), nil
}

// Choice returns one element of items chosen uniformly. Panics on empty input.
func Choice[T any](r *Random, items []T) T {
	return items[r.r.IntN(len(items))]
}
