package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"sort"
	"strings"
)

// Stop is a colour at a position of a Ramp.
type Stop struct {
	Offset float64 // Position in the ramp, 0.0 to 1.0
	Color  color.NRGBA
}

// Ramp maps gray levels to colours by linear interpolation between stops.
// Offsets outside [0, 1] are clamped; stops need not be sorted.
type Ramp []Stop

// Predefined ramps.
var (
	Grayscale = Ramp{
		{0, color.NRGBA{0, 0, 0, 255}},
		{1, color.NRGBA{255, 255, 255, 255}},
	}

	Terrain = Ramp{
		{0.00, color.NRGBA{12, 36, 96, 255}},    // deep water
		{0.42, color.NRGBA{40, 96, 170, 255}},   // shallow water
		{0.48, color.NRGBA{220, 208, 150, 255}}, // sand
		{0.55, color.NRGBA{70, 140, 60, 255}},   // grass
		{0.72, color.NRGBA{40, 90, 40, 255}},    // forest
		{0.85, color.NRGBA{120, 110, 100, 255}}, // rock
		{1.00, color.NRGBA{250, 250, 250, 255}}, // snow
	}

	Fire = Ramp{
		{0, color.NRGBA{0, 0, 0, 255}},
		{0.4, color.NRGBA{160, 20, 0, 255}},
		{0.7, color.NRGBA{250, 140, 0, 255}},
		{1, color.NRGBA{255, 250, 200, 255}},
	}
)

var namedRamps = map[string]Ramp{
	"gray":    Grayscale,
	"terrain": Terrain,
	"fire":    Fire,
}

// RampByName returns a predefined ramp: gray, terrain or fire.
func RampByName(name string) (Ramp, error) {
	r, ok := namedRamps[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("texture: unknown ramp %q", name)
	}
	return r, nil
}

// At returns the colour at t.
func (r Ramp) At(t float64) color.NRGBA {
	switch len(r) {
	case 0:
		return color.NRGBA{}
	case 1:
		return r[0].Color
	}

	sorted := slices.Clone(r)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted.at(clamp01(t))
}

// at expects sorted stops and t in [0, 1].
func (r Ramp) at(t float64) color.NRGBA {
	idx := sort.Search(len(r), func(i int) bool {
		return r[i].Offset >= t
	})
	if idx == 0 {
		return r[0].Color
	}
	if idx == len(r) {
		return r[len(r)-1].Color
	}

	lo, hi := r[idx-1], r[idx]
	span := hi.Offset - lo.Offset
	if span <= 0 {
		return hi.Color
	}
	f := (t - lo.Offset) / span
	return color.NRGBA{
		R: mix(lo.Color.R, hi.Color.R, f),
		G: mix(lo.Color.G, hi.Color.G, f),
		B: mix(lo.Color.B, hi.Color.B, f),
		A: mix(lo.Color.A, hi.Color.A, f),
	}
}

// lut evaluates the ramp at the 256 gray levels.
func (r Ramp) lut() [256]color.NRGBA {
	var table [256]color.NRGBA
	if len(r) == 0 {
		return table
	}
	sorted := slices.Clone(r)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	for i := range table {
		table[i] = sorted.at(float64(i) / 255)
	}
	return table
}

// Colorize maps every pixel of src through the ramp.
func Colorize(src *image.Gray, ramp Ramp) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	table := ramp.lut()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, y, table[src.GrayAt(x, y).Y])
		}
	}
	return dst
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
