package checkpoint

import (
	"context"
	"encoding"
	"errors"
	"fmt"

	"github.com/gogpu/procgen"
)

// ErrKindMismatch is returned by Load when the stored generator type does
// not match the destination.
var ErrKindMismatch = errors.New("checkpoint: kind mismatch")

// KindOf returns the kind of a procgen generator pointer.
func KindOf(v any) (Kind, bool) {
	switch v.(type) {
	case *procgen.Xorshift64Star:
		return KindXorshift64Star, true
	case *procgen.Xorshift128Plus:
		return KindXorshift128Plus, true
	case *procgen.Xorshift1024Star:
		return KindXorshift1024Star, true
	case *procgen.PerlinNoise:
		return KindPerlinNoise, true
	default:
		return 0, false
	}
}

// SaveOption configures Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	compress bool
}

// WithCompression enables or disables snappy compression of the payload.
// Compression is on by default.
func WithCompression(on bool) SaveOption {
	return func(o *saveOptions) {
		o.compress = on
	}
}

// Save encodes the state of g and writes it to store under key.
// g must be a pointer to a procgen generator.
func Save(ctx context.Context, store Store, key string, g encoding.BinaryMarshaler, opts ...SaveOption) error {
	kind, ok := KindOf(g)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownKind, g)
	}

	o := saveOptions{compress: true}
	for _, opt := range opts {
		opt(&o)
	}

	payload, err := g.MarshalBinary()
	if err != nil {
		return fmt.Errorf("checkpoint: marshal %v: %w", kind, err)
	}
	blob, err := Encode(kind, payload, o.compress)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, key, blob); err != nil {
		return fmt.Errorf("checkpoint: save %q: %w", key, err)
	}

	procgen.Logger().Info("checkpoint: saved",
		"key", key, "kind", kind.String(), "bytes", len(blob), "compressed", o.compress)
	return nil
}

// Load reads the state stored under key into g.
// g must be a pointer to the same generator type that was saved.
func Load(ctx context.Context, store Store, key string, g encoding.BinaryUnmarshaler) error {
	want, ok := KindOf(g)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownKind, g)
	}

	blob, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("checkpoint: load %q: %w", key, err)
	}
	kind, payload, err := Decode(blob)
	if err != nil {
		return fmt.Errorf("checkpoint: load %q: %w", key, err)
	}
	if kind != want {
		return fmt.Errorf("%w: stored %v, want %v", ErrKindMismatch, kind, want)
	}
	if err := g.UnmarshalBinary(payload); err != nil {
		return fmt.Errorf("checkpoint: load %q: %w", key, err)
	}

	procgen.Logger().Debug("checkpoint: loaded", "key", key, "kind", kind.String())
	return nil
}
