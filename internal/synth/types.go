package synth

import (
	"math/rand"
	"time"
)

// Clock abstracts wall-clock reads for deterministic testing.
type Clock interface {
	Now() time.Time
}

// Rand abstracts the random source for deterministic values.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

type RealRand struct{ *rand.Rand }

func (r RealRand) Intn(n int) int   { return r.Rand.Intn(n) }
func (r RealRand) Float64() float64 { return r.Rand.Float64() }

// NewRand returns a seeded source. Seed 0 means seed from the clock, so
// every process start looks different.
func NewRand(seed int64) RealRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return RealRand{rand.New(rand.NewSource(seed))}
}
