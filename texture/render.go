package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/procgen"
	"github.com/gogpu/procgen/internal/parallel"
)

// Render errors.
var (
	// ErrInvalidSize is returned for a non-positive width or height.
	ErrInvalidSize = errors.New("texture: invalid size")

	// ErrNilNoise is returned when no noise generator is given.
	ErrNilNoise = errors.New("texture: nil noise")
)

// Renderer renders noise fields on a reusable worker pool.
//
// Thread safety: Renderer is safe for concurrent use. Concurrent renders
// share the pool.
type Renderer struct {
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewRenderer(workers int) *Renderer {
	return &Renderer{pool: parallel.NewWorkerPool(workers)}
}

// Workers returns the size of the renderer's pool.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close releases the renderer's workers.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render renders a width x height grayscale image of pn using a temporary
// renderer sized to GOMAXPROCS.
func Render(ctx context.Context, pn *procgen.PerlinNoise, width, height int, opts ...Option) (*image.Gray, error) {
	r := NewRenderer(0)
	defer r.Close()
	return r.Render(ctx, pn, width, height, opts...)
}

// Render renders a width x height grayscale image of pn.
//
// Pixel (x, y) samples noise at (ox + x*f/width, oy + y*f/height, z) where
// f is the frequency. Values are clamped to [0, 1] and scaled to 0..255.
// If ctx is cancelled before every band has started, Render returns the
// context error and no image.
func (r *Renderer) Render(ctx context.Context, pn *procgen.PerlinNoise, width, height int, opts ...Option) (*image.Gray, error) {
	if pn == nil {
		return nil, ErrNilNoise
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.octaves < 1 {
		procgen.Logger().Warn("texture: octaves below 1, using 1", "octaves", o.octaves)
		o.octaves = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	bands := parallel.SplitRows(height, o.bandHeight)
	sx := o.frequency / float64(width)
	sy := o.frequency / float64(height)

	tasks := make([]func(), len(bands))
	for i, band := range bands {
		tasks[i] = func() {
			for y := band.Y0; y < band.Y1; y++ {
				row := img.Pix[y*img.Stride : y*img.Stride+width]
				ny := o.offsetY + float64(y)*sy
				for x := range row {
					nx := o.offsetX + float64(x)*sx
					row[x] = toGray(sample(pn, &o, nx, ny))
				}
			}
		}
	}

	procgen.Logger().Debug("texture: rendering",
		"width", width, "height", height, "bands", len(bands), "workers", r.pool.Workers())
	start := time.Now()

	if err := r.pool.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("texture: render: %w", err)
	}

	procgen.Logger().Info("texture: rendered",
		"width", width, "height", height, "octaves", o.octaves, "elapsed", time.Since(start))
	return img, nil
}

// sample returns the noise value at a point, nominally in [0, 1].
func sample(pn *procgen.PerlinNoise, o *options, x, y float64) float64 {
	if o.normalize {
		return pn.NormalizedOctaveNoise3D(x, y, o.z, o.octaves, o.persistence)*0.5 + 0.5
	}
	return pn.OctaveNoise3D01(x, y, o.z, o.octaves)
}

func toGray(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
