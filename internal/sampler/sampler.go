// Package sampler provides the deterministic uniform source used to generate
// output files.
//
// The generator is SplitMix64 as published by Steele, Lea and Flood and used by
// Java's SplittableRandom. A SplitMix64 seeded with s yields exactly the same
// sequence as new SplittableRandom(s), so files produced here can be compared
// line for line with files produced by the JVM implementation.
package sampler

// goldenGamma is the odd increment added to the state on every step.
const goldenGamma = 0x9e3779b97f4a7c15

// doubleUnit is 2^-53.
const doubleUnit = 1.0 / (1 << 53)

// SplitMix64 is a 64-bit state pseudo-random generator. The zero value is a
// valid generator seeded with 0. It is not safe for concurrent use.
type SplitMix64 struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed int64) *SplitMix64 {
	return &SplitMix64{state: uint64(seed)}
}

// Uint64 returns the next 64 pseudo-random bits. It also makes SplitMix64 a
// math/rand/v2 Source.
func (s *SplitMix64) Uint64() uint64 {
	s.state += goldenGamma
	return mix64(s.state)
}

// Float64 returns a uniformly distributed value in [0.0, 1.0) built from the
// top 53 bits of the next output.
func (s *SplitMix64) Float64() float64 {
	return float64(s.Uint64()>>11) * doubleUnit
}

// mix64 is the Stafford variant 13 finalizer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
