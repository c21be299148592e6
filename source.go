package procgen

import (
	"math"
	"math/bits"
)

// Source is the minimal capability of an integer generator.
// Every generator in this package satisfies it, and it has the same method
// set as math/rand/v2.Source, so a pointer to any generator can be passed
// to rand.New.
type Source interface {
	Uint64() uint64
}

// Generator is a Source that also reports its output range.
type Generator interface {
	Source
	Min() uint64
	Max() uint64
}

// Float64 returns a uniformly distributed value in [0, 1) built from the
// top 53 bits of the next output.
func Float64[G Source](g G) float64 {
	return float64(g.Uint64()>>11) * 0x1p-53
}

// IntN returns a uniformly distributed value in [0, n).
// It returns 0 if n <= 0 without consuming output.
//
// The reduction is Lemire's multiply-shift with rejection, so the result is
// unbiased and the number of outputs consumed depends only on the values
// drawn.
func IntN[G Source](g G, n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64n(g, uint64(n)))
}

func uint64n[G Source](g G, n uint64) uint64 {
	hi, lo := bits.Mul64(g.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(g.Uint64(), n)
		}
	}
	return hi
}

// Shuffle pseudo-randomizes the order of n elements with a Fisher–Yates
// walk from the last index down. swap swaps the elements with indexes i
// and j.
func Shuffle[G Source](g G, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(uint64n(g, uint64(i+1)))
		swap(i, j)
	}
}

// Output range shared by every 64-bit generator.
const (
	rangeMin uint64 = 0
	rangeMax uint64 = math.MaxUint64
)

// splitmix64 is one step of SplitMix64 applied to a seed.
// It maps 0 to a non-zero value, which makes it usable as a seed scrambler
// for the xorshift family.
func splitmix64(seed uint64) uint64 {
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
