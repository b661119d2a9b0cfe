// Package randutil builds the deterministic random sources handed to the
// hand engine.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words are derived from the one int64 so a single CLI flag reproduces a run.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns an independent source for stream n of a seeded run.
// Workers in a simulation each take their own stream so they never share
// state. Derive(seed, 0) differs from New(seed).
func Derive(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed)
	s := mix(stream + 1)
	return rand.New(rand.NewPCG(mix(u^s), mix(u+goldenRatio64*(stream+2))))
}

// Seed returns seed unless it is zero, in which case it returns a
// time-based value. Zero means "pick one for me" on every CLI surface.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
