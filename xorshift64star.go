package procgen

// Xorshift64Star is the xorshift64* generator with a single 64-bit word of
// state and period 2^64-1.
//
// The state must never be zero. A zero state stays zero forever and every
// output is 0.
//
// Xorshift64Star is a value type; copying it forks the stream.
type Xorshift64Star struct {
	s uint64
}

const xorshift64StarMul = 2685821657736338717

// NewXorshift64Star returns a generator seeded with seed, which must be
// non-zero.
func NewXorshift64Star(seed uint64) Xorshift64Star {
	return Xorshift64Star{s: seed}
}

// Seed replaces the state with seed, which must be non-zero.
func (g *Xorshift64Star) Seed(seed uint64) {
	g.s = seed
}

// Uint64 advances the state and returns the next output.
// The multiplier scrambles the returned value only; the stored state is the
// plain xorshift result.
func (g *Xorshift64Star) Uint64() uint64 {
	s := g.s
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	g.s = s
	return s * xorshift64StarMul
}

// Discard advances the state n steps.
func (g *Xorshift64Star) Discard(n uint64) {
	for ; n > 0; n-- {
		g.Uint64()
	}
}

// Min returns the smallest possible output.
func (g *Xorshift64Star) Min() uint64 { return rangeMin }

// Max returns the largest possible output.
func (g *Xorshift64Star) Max() uint64 { return rangeMax }

// State returns the raw internal state. Passing it to Seed resumes the
// stream at the same point.
func (g *Xorshift64Star) State() uint64 {
	return g.s
}

// MarshalBinary encodes the state as 8 little-endian bytes.
func (g *Xorshift64Star) MarshalBinary() ([]byte, error) {
	return putWords(make([]byte, 0, Xorshift64StarStateSize), []uint64{g.s}), nil
}

// UnmarshalBinary restores a state written by MarshalBinary.
func (g *Xorshift64Star) UnmarshalBinary(data []byte) error {
	if err := checkStateSize(data, Xorshift64StarStateSize); err != nil {
		return err
	}
	var w [1]uint64
	readWords(data, w[:])
	g.s = w[0]
	return nil
}
