package procgen

import "encoding/binary"

// Xorshift1024Star is the xorshift1024* generator with sixteen 64-bit words
// of state, a rotating index and period 2^1024-1.
//
// The sixteen words must not all be zero. Scalar seeding derives them from
// an Xorshift64Star, so any non-zero scalar seed is valid.
type Xorshift1024Star struct {
	s [16]uint64
	p int
}

// Xorshift1024StarState is a checkpoint of an Xorshift1024Star.
type Xorshift1024StarState struct {
	Words [16]uint64
	// P is the rotating index. It is reduced modulo 16 on restore.
	P int
}

const xorshift1024StarMul = 1181783497276652981

// NewXorshift1024Star returns a generator whose words are the first sixteen
// outputs of NewXorshift64Star(seed).
func NewXorshift1024Star(seed uint64) Xorshift1024Star {
	var g Xorshift1024Star
	g.Seed(seed)
	return g
}

// NewXorshift1024StarWords returns a generator with the given words and
// index 0.
func NewXorshift1024StarWords(words [16]uint64) Xorshift1024Star {
	return Xorshift1024Star{s: words}
}

// Seed fills the state from a transient Xorshift64Star seeded with seed and
// resets the index.
func (g *Xorshift1024Star) Seed(seed uint64) {
	x := NewXorshift64Star(seed)
	for i := range g.s {
		g.s[i] = x.Uint64()
	}
	g.p = 0
}

// SeedWords replaces the words and resets the index.
func (g *Xorshift1024Star) SeedWords(words [16]uint64) {
	g.s = words
	g.p = 0
}

// SeedState restores a checkpoint taken with State.
func (g *Xorshift1024Star) SeedState(st Xorshift1024StarState) {
	g.s = st.Words
	g.p = st.P & 15
}

// Uint64 advances the state and returns the next output.
func (g *Xorshift1024Star) Uint64() uint64 {
	s0 := g.s[g.p]
	g.p = (g.p + 1) & 15
	s1 := g.s[g.p]
	s1 ^= s1 << 31
	s1 ^= s1 >> 11
	s0 ^= s0 >> 30
	g.s[g.p] = s0 ^ s1
	return g.s[g.p] * xorshift1024StarMul
}

// Discard advances the state n steps.
func (g *Xorshift1024Star) Discard(n uint64) {
	for ; n > 0; n-- {
		g.Uint64()
	}
}

// Min returns the smallest possible output.
func (g *Xorshift1024Star) Min() uint64 { return rangeMin }

// Max returns the largest possible output.
func (g *Xorshift1024Star) Max() uint64 { return rangeMax }

// State returns the words and the rotating index.
func (g *Xorshift1024Star) State() Xorshift1024StarState {
	return Xorshift1024StarState{Words: g.s, P: g.p}
}

// MarshalBinary encodes the sixteen words followed by the index as a
// 64-bit word, all little endian.
func (g *Xorshift1024Star) MarshalBinary() ([]byte, error) {
	buf := putWords(make([]byte, 0, Xorshift1024StarStateSize), g.s[:])
	return binary.LittleEndian.AppendUint64(buf, uint64(g.p)), nil
}

// UnmarshalBinary restores a state written by MarshalBinary.
func (g *Xorshift1024Star) UnmarshalBinary(data []byte) error {
	if err := checkStateSize(data, Xorshift1024StarStateSize); err != nil {
		return err
	}
	var st Xorshift1024StarState
	readWords(data, st.Words[:])
	st.P = int(binary.LittleEndian.Uint64(data[16*8:]) & 15)
	g.SeedState(st)
	return nil
}
