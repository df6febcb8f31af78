package simulate

import (
	"hash/fnv"
	"math/rand"
)

// seedModulus keeps seeds inside [0, 2^31-1), mirroring the bound commonly
// used for 32-bit generator seeds.
const seedModulus = 1<<31 - 1

// Stream is a reproducible pseudo-random draw sequence keyed by a string.
// The same key yields the same draws in the same order on every platform:
// the key is hashed with FNV-1a (explicitly pinned, so seeding never depends
// on an unspecified language hash) and drives a math/rand source, whose
// sequence is covered by the Go 1 compatibility promise.
//
// A Stream is not safe for concurrent use; callers create one per request.
type Stream struct {
	rng *rand.Rand
}

// NewStream creates a stream seeded from key.
func NewStream(key string) *Stream {
	return &Stream{rng: rand.New(rand.NewSource(SeedFor(key)))}
}

// SeedFor returns the non-negative seed derived from key.
func SeedFor(key string) int64 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int64(h.Sum32() % seedModulus)
}

// Uniform draws from [0, 1).
func (s *Stream) Uniform() float64 {
	return s.rng.Float64()
}

// Gaussian draws from a normal distribution with the given mean and stddev.
func (s *Stream) Gaussian(mean, stddev float64) float64 {
	return mean + stddev*s.rng.NormFloat64()
}

// Int draws an integer from [lo, hi], both ends inclusive.
func (s *Stream) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
