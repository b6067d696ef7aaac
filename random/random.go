// Package random implements the xoshiro256** pseudo-random generator with
// explicit state.
//
// A [Source] is seeded from a single 64-bit value expanded with SplitMix64.
// It is not safe for concurrent use; give each goroutine its own Source.
package random

import "math/bits"

// fallbackSeed replaces a zero seed so the state is never all zero.
const fallbackSeed uint64 = 0x853c49e6748fea9b

// Source is a xoshiro256** generator. It satisfies [math/rand/v2.Source].
type Source struct {
	s [4]uint64
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	var r Source
	r.Seed(seed)

	return &r
}

// Seed resets the state of r from seed.
func (r *Source) Seed(seed uint64) {
	if seed == 0 {
		seed = fallbackSeed
	}

	sm := splitMix64(seed)
	for i := range r.s {
		r.s[i] = sm.next()
	}
}

// Uint64 returns the next value in the sequence.
func (r *Source) Uint64() uint64 {
	s := &r.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Range returns a value in [lo, hi]. The bounds may be given in either
// order.
func (r *Source) Range(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	span := uint64(hi-lo) + 1
	if span == 0 {
		// full 64-bit range
		return int(r.Uint64())
	}

	return lo + int(r.bounded(span))
}

// bounded returns a uniform value in [0, n) using Lemire's multiply and
// reject method.
func (r *Source) bounded(n uint64) uint64 {
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}

	return hi
}

type splitMix64 uint64

func (x *splitMix64) next() uint64 {
	*x += 0x9e3779b97f4a7c15

	z := uint64(*x)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
