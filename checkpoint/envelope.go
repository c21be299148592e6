// Package checkpoint persists procgen generator states.
//
// A state is the generator's MarshalBinary output wrapped in a small
// envelope that records which generator produced it, whether the payload
// is snappy-compressed, and an xxhash checksum of the raw payload:
//
//	offset size field
//	0      4    magic "PGCK"
//	4      1    version (1)
//	5      1    kind
//	6      1    flags (bit 0: snappy)
//	7      1    reserved, zero
//	8      4    stored payload length, little endian
//	12     8    xxhash64 of the uncompressed payload, little endian
//	20     n    payload
//
// Envelopes are written to a Store: a directory, memory or Redis.
package checkpoint

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/snappy"
)

// Envelope errors.
var (
	ErrBadMagic    = errors.New("checkpoint: bad magic")
	ErrVersion     = errors.New("checkpoint: unsupported version")
	ErrTruncated   = errors.New("checkpoint: truncated envelope")
	ErrChecksum    = errors.New("checkpoint: checksum mismatch")
	ErrUnknownKind = errors.New("checkpoint: unknown kind")
)

const (
	magic      = "PGCK"
	version    = 1
	headerSize = 20

	flagSnappy = 1 << 0
)

// Kind identifies the generator type of a payload.
type Kind uint8

// Known kinds.
const (
	KindXorshift64Star Kind = iota + 1
	KindXorshift128Plus
	KindXorshift1024Star
	KindPerlinNoise
)

// String returns the generator name for the kind.
func (k Kind) String() string {
	switch k {
	case KindXorshift64Star:
		return "xorshift64star"
	case KindXorshift128Plus:
		return "xorshift128plus"
	case KindXorshift1024Star:
		return "xorshift1024star"
	case KindPerlinNoise:
		return "perlin"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) valid() bool {
	return k >= KindXorshift64Star && k <= KindPerlinNoise
}

// Encode wraps payload in an envelope, compressing it with snappy when
// compress is true.
func Encode(kind Kind, payload []byte, compress bool) ([]byte, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	var flags byte
	stored := payload
	if compress {
		flags |= flagSnappy
		stored = snappy.Encode(nil, payload)
	}

	buf := make([]byte, headerSize, headerSize+len(stored))
	copy(buf, magic)
	buf[4] = version
	buf[5] = byte(kind)
	buf[6] = flags
	binary.LittleEndian.PutUint32(buf[8:], uint32(len(stored)))
	binary.LittleEndian.PutUint64(buf[12:], xxhash.Sum64(payload))
	return append(buf, stored...), nil
}

// Decode unwraps an envelope and returns the kind and raw payload.
func Decode(blob []byte) (Kind, []byte, error) {
	if len(blob) < headerSize {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(blob))
	}
	if string(blob[:4]) != magic {
		return 0, nil, ErrBadMagic
	}
	if blob[4] != version {
		return 0, nil, fmt.Errorf("%w: %d", ErrVersion, blob[4])
	}

	kind := Kind(blob[5])
	if !kind.valid() {
		return 0, nil, fmt.Errorf("%w: %d", ErrUnknownKind, blob[5])
	}
	flags := blob[6]
	n := int(binary.LittleEndian.Uint32(blob[8:]))
	sum := binary.LittleEndian.Uint64(blob[12:])

	stored := blob[headerSize:]
	if len(stored) != n {
		return 0, nil, fmt.Errorf("%w: payload %d bytes, header says %d", ErrTruncated, len(stored), n)
	}

	payload := stored
	if flags&flagSnappy != 0 {
		var err error
		payload, err = snappy.Decode(nil, stored)
		if err != nil {
			return 0, nil, fmt.Errorf("checkpoint: decompress: %w", err)
		}
	}
	if xxhash.Sum64(payload) != sum {
		return 0, nil, ErrChecksum
	}
	return kind, payload, nil
}
