package parallel

import "errors"

// ErrClosed is returned by Run on a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// DefaultBandHeight is the number of rows per band when the caller does
// not choose one. 16 rows of a 1024-wide gray image is 16KB.
const DefaultBandHeight = 16

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into bands of bandHeight rows. The last
// band may be shorter. A non-positive bandHeight uses DefaultBandHeight;
// a non-positive height yields no bands.
func SplitRows(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}
	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}
