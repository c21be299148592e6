// Package procgen provides deterministic pseudorandom generators and
// coherent noise for procedural content.
//
// # Overview
//
// The package contains four value types that are fully determined by their
// seed:
//
//   - [Xorshift64Star]: 64-bit state, period 2^64-1
//   - [Xorshift128Plus]: 128-bit state, period 2^128-1
//   - [Xorshift1024Star]: 1024-bit state plus a rotating index, period 2^1024-1
//   - [PerlinNoise]: improved Perlin noise over a seeded permutation table
//
// Output sequences are reproducible bit-for-bit across platforms, so a
// seed (or a checkpointed state) is enough to regenerate the same terrain,
// particle pattern or texture later.
//
// # Quick Start
//
//	import "github.com/gogpu/procgen"
//
//	g := procgen.NewXorshift128Plus(12345)
//	v := g.Uint64()
//
//	// Standard distributions via math/rand/v2:
//	r := rand.New(&g)
//	angle := r.Float64() * 2 * math.Pi
//
//	// Coherent noise:
//	pn := procgen.NewPerlinNoise(7)
//	h := pn.OctaveNoise2D01(x*0.01, y*0.01, 6)
//
// # Preconditions
//
// Generators never return errors or panic. A zero seed for [Xorshift64Star],
// an all-zero state for [Xorshift128Plus] or [Xorshift1024Star] is a caller
// error and produces a degenerate (but deterministic) stream. The
// permutation table of [PerlinNoise] is used verbatim after
// [PerlinNoise.Deserialize]; lookups are masked so a malformed table cannot
// index out of range.
//
// # Concurrency
//
// Generators carry no locks. Use one instance per goroutine. A PerlinNoise
// is read-only after construction and may be evaluated from many goroutines
// at once, as long as nobody reseeds it concurrently.
//
// # Sub-packages
//
//   - texture: parallel rendering of noise fields to images
//   - checkpoint: envelope format and stores (file, Redis) for generator state
//   - cmd/procgen: command-line front end
package procgen
