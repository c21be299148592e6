package texture

import "github.com/gogpu/procgen/internal/parallel"

// Option configures a Render call.
type Option func(*options)

type options struct {
	frequency   float64
	octaves     int
	persistence float64
	z           float64
	offsetX     float64
	offsetY     float64
	normalize   bool
	bandHeight  int
}

func defaultOptions() options {
	return options{
		frequency:   4,
		octaves:     1,
		persistence: 0.5,
		normalize:   true,
		bandHeight:  parallel.DefaultBandHeight,
	}
}

// WithFrequency sets how many noise lattice cells span the image width
// (and height). Default 4.
func WithFrequency(f float64) Option {
	return func(o *options) {
		o.frequency = f
	}
}

// WithOctaves sets the number of octaves summed per sample. Default 1.
func WithOctaves(n int) Option {
	return func(o *options) {
		o.octaves = n
	}
}

// WithPersistence sets the amplitude ratio between octaves in normalized
// mode. Default 0.5.
func WithPersistence(p float64) Option {
	return func(o *options) {
		o.persistence = p
	}
}

// WithZ selects the slice of the 3D noise field that is rendered.
// Animating z gives a smoothly evolving texture.
func WithZ(z float64) Option {
	return func(o *options) {
		o.z = z
	}
}

// WithOffset shifts the sampled window in noise space, so adjacent tiles
// of a larger map can be rendered separately.
func WithOffset(x, y float64) Option {
	return func(o *options) {
		o.offsetX = x
		o.offsetY = y
	}
}

// WithNormalize chooses between the normalized octave sum (default),
// which stays within one octave's range, and the raw sum remapped with
// *0.5+0.5, which clips to black or white where the sum leaves [-1, 1].
// Raw mode always uses persistence 0.5.
func WithNormalize(normalize bool) Option {
	return func(o *options) {
		o.normalize = normalize
	}
}

// WithBandHeight sets the number of rows per parallel task.
func WithBandHeight(rows int) Option {
	return func(o *options) {
		o.bandHeight = rows
	}
}
