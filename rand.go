package blobposter

import (
	"math"
	"math/rand"
)

// Streams are the two random sources a scene draws from. General picks
// colours and geometry choices, Jitter feeds per point noise.
//
// A *rand.Rand is not safe for concurrent use; every scene gets its own pair.
type Streams struct {
	General *rand.Rand
	Jitter  *rand.Rand
}

// jitterStream is mixed into the seed of the jitter generator so both streams
// can come from one user seed without repeating each other.
const jitterStream = 1

// NewStreams seeds both generators from seed.
func NewStreams(seed int64) Streams {
	return Streams{
		General: rand.New(rand.NewSource(seed)),
		Jitter:  rand.New(rand.NewSource(deriveSeed(seed, jitterStream))),
	}
}

// Reseed rewinds both generators as if freshly created from seed.
func (s Streams) Reseed(seed int64) {
	s.General.Seed(seed)
	SeedJitter(s.Jitter, seed)
}

// SeedJitter rewinds a jitter generator to where NewStreams(seed) starts it.
func SeedJitter(r *rand.Rand, seed int64) {
	r.Seed(deriveSeed(seed, jitterStream))
}

// deriveSeed mixes a parent seed and a stream id, SplitMix64 style.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Uniform draws from [low, high).
func Uniform(r *rand.Rand, low, high float64) float64 {
	return low + (high-low)*r.Float64()
}

// Phase draws an angle in [0, 2π).
func Phase(r *rand.Rand) float64 {
	return r.Float64() * 2 * math.Pi
}

// IntBetween draws an integer in [low, high], both ends included.
func IntBetween(r *rand.Rand, low, high int) int {
	return low + r.Intn(high-low+1)
}
