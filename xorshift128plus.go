package procgen

// Xorshift128Plus is the xorshift128+ generator with two 64-bit words of
// state and period 2^128-1.
//
// The two words must not both be zero.
type Xorshift128Plus struct {
	s0, s1 uint64
}

// NewXorshift128Plus returns a generator with state {seed, 1}.
func NewXorshift128Plus(seed uint64) Xorshift128Plus {
	return Xorshift128Plus{s0: seed, s1: 1}
}

// NewXorshift128PlusState returns a generator with the given raw state,
// typically obtained from State.
func NewXorshift128PlusState(state [2]uint64) Xorshift128Plus {
	return Xorshift128Plus{s0: state[0], s1: state[1]}
}

// Seed replaces the state with {seed, 1}.
func (g *Xorshift128Plus) Seed(seed uint64) {
	g.s0, g.s1 = seed, 1
}

// SeedState replaces the state with the two given words.
func (g *Xorshift128Plus) SeedState(state [2]uint64) {
	g.s0, g.s1 = state[0], state[1]
}

// Uint64 advances the state and returns the next output.
func (g *Xorshift128Plus) Uint64() uint64 {
	x := g.s0
	y := g.s1
	g.s0 = y
	x ^= x << 23
	g.s1 = x ^ y ^ (x >> 17) ^ (y >> 26)
	return g.s1 + y
}

// Discard advances the state n steps.
func (g *Xorshift128Plus) Discard(n uint64) {
	for ; n > 0; n-- {
		g.Uint64()
	}
}

// Min returns the smallest possible output.
func (g *Xorshift128Plus) Min() uint64 { return rangeMin }

// Max returns the largest possible output.
func (g *Xorshift128Plus) Max() uint64 { return rangeMax }

// State returns the two raw state words.
func (g *Xorshift128Plus) State() [2]uint64 {
	return [2]uint64{g.s0, g.s1}
}

// MarshalBinary encodes the state as 16 little-endian bytes, s0 first.
func (g *Xorshift128Plus) MarshalBinary() ([]byte, error) {
	return putWords(make([]byte, 0, Xorshift128PlusStateSize), []uint64{g.s0, g.s1}), nil
}

// UnmarshalBinary restores a state written by MarshalBinary.
func (g *Xorshift128Plus) UnmarshalBinary(data []byte) error {
	if err := checkStateSize(data, Xorshift128PlusStateSize); err != nil {
		return err
	}
	var w [2]uint64
	readWords(data, w[:])
	g.SeedState(w)
	return nil
}
