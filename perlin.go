package procgen

import (
	"encoding/binary"
	"math"
)

const (
	permSize = 512
	permMask = permSize - 1
)

// PerlinNoise evaluates improved Perlin noise (Perlin 2002) over a seeded
// permutation table.
//
// The table holds a permutation of 0..255 twice in a row so lattice lookups
// never wrap. It is fixed by the seed and only changes through Reseed,
// ReseedFrom, Deserialize or UnmarshalBinary.
//
// Evaluation does not mutate the table and is safe for concurrent use.
type PerlinNoise struct {
	p [permSize]int32
}

// NewPerlinNoise returns a noise generator whose permutation table is
// derived from seed.
func NewPerlinNoise(seed uint32) PerlinNoise {
	var pn PerlinNoise
	pn.Reseed(seed)
	return pn
}

// NewPerlinNoiseFrom returns a noise generator whose permutation table is
// shuffled by g.
func NewPerlinNoiseFrom(g Source) PerlinNoise {
	var pn PerlinNoise
	pn.ReseedFrom(g)
	return pn
}

// Reseed rebuilds the permutation table from seed.
//
// The shuffle is a Fisher–Yates walk driven by an Xorshift64Star whose
// state is one SplitMix64 step of the seed. Every seed, including 0, gives
// a valid permutation.
func (pn *PerlinNoise) Reseed(seed uint32) {
	s := splitmix64(uint64(seed))
	if s == 0 {
		s = 1
	}
	g := NewXorshift64Star(s)
	pn.shuffle(&g)
	Logger().Debug("perlin: permutation table built", "seed", seed)
}

// ReseedFrom rebuilds the permutation table with a shuffle driven by g.
func (pn *PerlinNoise) ReseedFrom(g Source) {
	pn.shuffle(g)
	Logger().Debug("perlin: permutation table built from source")
}

func (pn *PerlinNoise) shuffle(g Source) {
	for i := range 256 {
		pn.p[i] = int32(i)
	}
	Shuffle(g, 256, func(i, j int) {
		pn.p[i], pn.p[j] = pn.p[j], pn.p[i]
	})
	copy(pn.p[256:], pn.p[:256])
}

// Serialize returns the permutation table verbatim.
func (pn *PerlinNoise) Serialize() [permSize]int32 {
	return pn.p
}

// Deserialize replaces the permutation table verbatim. The table is not
// validated; a table that is not a duplicated permutation of 0..255 gives
// deterministic values with no noise guarantees.
func (pn *PerlinNoise) Deserialize(table [permSize]int32) {
	pn.p = table
}

// MarshalBinary encodes the table as 512 little-endian int32 values.
func (pn *PerlinNoise) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, PerlinNoiseStateSize)
	for _, v := range pn.p {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
	}
	return buf, nil
}

// UnmarshalBinary restores a table written by MarshalBinary.
func (pn *PerlinNoise) UnmarshalBinary(data []byte) error {
	if err := checkStateSize(data, PerlinNoiseStateSize); err != nil {
		return err
	}
	for i := range pn.p {
		pn.p[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return nil
}

// Noise1D returns noise at x. It equals Noise3D(x, 0, 0).
func (pn *PerlinNoise) Noise1D(x float64) float64 {
	return pn.Noise3D(x, 0, 0)
}

// Noise2D returns noise at (x, y). It equals Noise3D(x, y, 0).
func (pn *PerlinNoise) Noise2D(x, y float64) float64 {
	return pn.Noise3D(x, y, 0)
}

// Noise3D returns noise at (x, y, z), nominally in [-1, 1].
// The value is exactly 0 at every integer lattice point.
func (pn *PerlinNoise) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X := int32(int64(fx) & 255)
	Y := int32(int64(fy) & 255)
	Z := int32(int64(fz) & 255)

	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	a := pn.at(X) + Y
	aa := pn.at(a) + Z
	ab := pn.at(a+1) + Z
	b := pn.at(X+1) + Y
	ba := pn.at(b) + Z
	bb := pn.at(b+1) + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(pn.at(aa), x, y, z), grad(pn.at(ba), x-1, y, z)),
			lerp(u, grad(pn.at(ab), x, y-1, z), grad(pn.at(bb), x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(pn.at(aa+1), x, y, z-1), grad(pn.at(ba+1), x-1, y, z-1)),
			lerp(u, grad(pn.at(ab+1), x, y-1, z-1), grad(pn.at(bb+1), x-1, y-1, z-1))))
}

// Noise1D01 returns Noise1D(x)*0.5+0.5.
func (pn *PerlinNoise) Noise1D01(x float64) float64 {
	return pn.Noise1D(x)*0.5 + 0.5
}

// Noise2D01 returns Noise2D(x, y)*0.5+0.5.
func (pn *PerlinNoise) Noise2D01(x, y float64) float64 {
	return pn.Noise2D(x, y)*0.5 + 0.5
}

// Noise3D01 returns Noise3D(x, y, z)*0.5+0.5.
func (pn *PerlinNoise) Noise3D01(x, y, z float64) float64 {
	return pn.Noise3D(x, y, z)*0.5 + 0.5
}

// OctaveNoise1D sums octaves of Noise1D, doubling the frequency and
// halving the amplitude (starting at 1) each octave.
// It returns 0 when octaves <= 0.
func (pn *PerlinNoise) OctaveNoise1D(x float64, octaves int) float64 {
	return pn.octave(x, 0, 0, octaves, 0.5)
}

// OctaveNoise2D is the two-dimensional form of OctaveNoise1D.
func (pn *PerlinNoise) OctaveNoise2D(x, y float64, octaves int) float64 {
	return pn.octave(x, y, 0, octaves, 0.5)
}

// OctaveNoise3D is the three-dimensional form of OctaveNoise1D.
func (pn *PerlinNoise) OctaveNoise3D(x, y, z float64, octaves int) float64 {
	return pn.octave(x, y, z, octaves, 0.5)
}

// OctaveNoise1D01 returns OctaveNoise1D(x, octaves)*0.5+0.5.
// The octave sum is not normalized, so the result can leave [0, 1] for
// more than one octave.
func (pn *PerlinNoise) OctaveNoise1D01(x float64, octaves int) float64 {
	return pn.OctaveNoise1D(x, octaves)*0.5 + 0.5
}

// OctaveNoise2D01 returns OctaveNoise2D(x, y, octaves)*0.5+0.5.
func (pn *PerlinNoise) OctaveNoise2D01(x, y float64, octaves int) float64 {
	return pn.OctaveNoise2D(x, y, octaves)*0.5 + 0.5
}

// OctaveNoise3D01 returns OctaveNoise3D(x, y, z, octaves)*0.5+0.5.
func (pn *PerlinNoise) OctaveNoise3D01(x, y, z float64, octaves int) float64 {
	return pn.OctaveNoise3D(x, y, z, octaves)*0.5 + 0.5
}

// NormalizedOctaveNoise1D sums octaves with the given persistence (the
// amplitude ratio between successive octaves) and divides by the total
// amplitude, keeping the result in the range of a single octave.
// It returns 0 when octaves <= 0.
func (pn *PerlinNoise) NormalizedOctaveNoise1D(x float64, octaves int, persistence float64) float64 {
	return pn.normalizedOctave(x, 0, 0, octaves, persistence)
}

// NormalizedOctaveNoise2D is the two-dimensional form of NormalizedOctaveNoise1D.
func (pn *PerlinNoise) NormalizedOctaveNoise2D(x, y float64, octaves int, persistence float64) float64 {
	return pn.normalizedOctave(x, y, 0, octaves, persistence)
}

// NormalizedOctaveNoise3D is the three-dimensional form of NormalizedOctaveNoise1D.
func (pn *PerlinNoise) NormalizedOctaveNoise3D(x, y, z float64, octaves int, persistence float64) float64 {
	return pn.normalizedOctave(x, y, z, octaves, persistence)
}

func (pn *PerlinNoise) octave(x, y, z float64, octaves int, persistence float64) float64 {
	result := 0.0
	amp := 1.0
	for range octaves {
		result += pn.Noise3D(x, y, z) * amp
		x *= 2
		y *= 2
		z *= 2
		amp *= persistence
	}
	return result
}

func (pn *PerlinNoise) normalizedOctave(x, y, z float64, octaves int, persistence float64) float64 {
	total := 0.0
	amp := 1.0
	for range octaves {
		total += amp
		amp *= persistence
	}
	if total == 0 {
		return 0
	}
	return pn.octave(x, y, z, octaves, persistence) / total
}

// at reads the table with the index masked into range.
func (pn *PerlinNoise) at(i int32) int32 {
	return pn.p[i&permMask]
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad returns the dot product of the offset with one of the 12 edge
// directions of a cube, selected by the low four bits of hash (four of
// the sixteen codes repeat a direction).
func grad(hash int32, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
