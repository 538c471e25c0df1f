package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// All deals in the module draw from a source created here so a seed replays
// the same cards.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns an independent seed for the given stream, e.g. a worker
// index. Stream 0 returns seed unchanged.
func Derive(seed int64, stream int) int64 {
	if stream == 0 {
		return seed
	}
	return int64(mix(uint64(seed) + uint64(stream)*goldenRatio64))
}

// Resolve returns seed, or a seed taken from now when seed is zero.
func Resolve(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
