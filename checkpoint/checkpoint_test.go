package checkpoint

import (
	"context"
	"encoding"
	"errors"
	"testing"

	"github.com/gogpu/procgen"
)

type stateful interface {
	procgen.Source
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

func TestSaveLoad_ResumesStream(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	x64 := procgen.NewXorshift64Star(3)
	x128 := procgen.NewXorshift128Plus(3)
	x1024 := procgen.NewXorshift1024Star(3)

	tests := []struct {
		name     string
		g        stateful
		restored stateful
	}{
		{"xorshift64star", &x64, new(procgen.Xorshift64Star)},
		{"xorshift128plus", &x128, new(procgen.Xorshift128Plus)},
		{"xorshift1024star", &x1024, new(procgen.Xorshift1024Star)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 23 {
				tt.g.Uint64()
			}
			if err := Save(ctx, store, tt.name, tt.g); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if err := Load(ctx, store, tt.name, tt.restored); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			for i := range 100 {
				if a, b := tt.g.Uint64(), tt.restored.Uint64(); a != b {
					t.Fatalf("output %d after restore = %#x, want %#x", i, b, a)
				}
			}
		})
	}
}

func TestSaveLoad_PerlinNoise(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	pn := procgen.NewPerlinNoise(55)
	for _, compress := range []bool{true, false} {
		if err := Save(ctx, store, "terrain", &pn, WithCompression(compress)); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		var restored procgen.PerlinNoise
		if err := Load(ctx, store, "terrain", &restored); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if restored.Serialize() != pn.Serialize() {
			t.Errorf("restored table differs (compress=%v)", compress)
		}
	}
}

func TestLoad_KindMismatch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	g := procgen.NewXorshift64Star(1)
	if err := Save(ctx, store, "g", &g); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	var other procgen.Xorshift128Plus
	if err := Load(ctx, store, "g", &other); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Load() error = %v, want ErrKindMismatch", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	var g procgen.Xorshift64Star
	err := Load(context.Background(), NewMemoryStore(), "missing", &g)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

type notAGenerator struct{}

func (notAGenerator) MarshalBinary() ([]byte, error) { return nil, nil }

func TestSave_UnknownType(t *testing.T) {
	err := Save(context.Background(), NewMemoryStore(), "x", notAGenerator{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Save() error = %v, want ErrUnknownKind", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		v    any
		want Kind
		ok   bool
	}{
		{new(procgen.Xorshift64Star), KindXorshift64Star, true},
		{new(procgen.Xorshift128Plus), KindXorshift128Plus, true},
		{new(procgen.Xorshift1024Star), KindXorshift1024Star, true},
		{new(procgen.PerlinNoise), KindPerlinNoise, true},
		{procgen.NewXorshift64Star(1), 0, false},
		{"string", 0, false},
	}
	for _, tt := range tests {
		got, ok := KindOf(tt.v)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KindOf(%T) = %v, %v, want %v, %v", tt.v, got, ok, tt.want, tt.ok)
		}
	}
}
