package checkpoint

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	payload := bytes.Repeat([]byte{1, 2, 3, 4}, 64)
	for _, compress := range []bool{false, true} {
		blob, err := Encode(KindPerlinNoise, payload, compress)
		if err != nil {
			t.Fatalf("Encode(compress=%v) error = %v", compress, err)
		}
		if string(blob[:4]) != "PGCK" {
			t.Errorf("magic = %q, want PGCK", blob[:4])
		}
		if compress && len(blob) >= headerSize+len(payload) {
			t.Errorf("compressed envelope is %d bytes, want < %d", len(blob), headerSize+len(payload))
		}

		kind, got, err := Decode(blob)
		if err != nil {
			t.Fatalf("Decode(compress=%v) error = %v", compress, err)
		}
		if kind != KindPerlinNoise {
			t.Errorf("kind = %v, want %v", kind, KindPerlinNoise)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("payload changed in round trip (compress=%v)", compress)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	good, err := Encode(KindXorshift64Star, []byte{1, 2, 3, 4, 5, 6, 7, 8}, false)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	corrupt := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), good...))
	}

	tests := []struct {
		name string
		blob []byte
		want error
	}{
		{"short", good[:10], ErrTruncated},
		{"magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), ErrBadMagic},
		{"version", corrupt(func(b []byte) []byte { b[4] = 9; return b }), ErrVersion},
		{"kind", corrupt(func(b []byte) []byte { b[5] = 0; return b }), ErrUnknownKind},
		{"length", good[:len(good)-1], ErrTruncated},
		{"checksum", corrupt(func(b []byte) []byte { b[headerSize] ^= 0xff; return b }), ErrChecksum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.blob); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncode_UnknownKind(t *testing.T) {
	if _, err := Encode(Kind(0), nil, false); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Encode(Kind(0)) error = %v, want ErrUnknownKind", err)
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindXorshift64Star:   "xorshift64star",
		KindXorshift128Plus:  "xorshift128plus",
		KindXorshift1024Star: "xorshift1024star",
		KindPerlinNoise:      "perlin",
		Kind(42):             "Kind(42)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
}
