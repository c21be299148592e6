package procgen

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrStateSize is returned when a binary state blob has the wrong length
// for the generator decoding it.
var ErrStateSize = errors.New("procgen: invalid state size")

// Encoded state sizes in bytes. All words are little endian.
const (
	Xorshift64StarStateSize   = 8
	Xorshift128PlusStateSize  = 16
	Xorshift1024StarStateSize = 16*8 + 8
	PerlinNoiseStateSize      = permSize * 4
)

func checkStateSize(data []byte, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrStateSize, len(data), want)
	}
	return nil
}

func putWords(dst []byte, words []uint64) []byte {
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}
	return dst
}

func readWords(src []byte, words []uint64) {
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
}
