package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	return img
}

func TestEncode_RoundTrip(t *testing.T) {
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		PNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		BMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		TIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}
	src := testGray()

	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("Bounds = %v, want %v", got.Bounds(), src.Bounds())
			}
			for _, p := range [][2]int{{0, 0}, {5, 2}, {7, 3}} {
				want := src.GrayAt(p[0], p[1])
				have := color.GrayModel.Convert(got.At(p[0], p[1])).(color.Gray)
				if have != want {
					t.Errorf("pixel %v = %v, want %v", p, have, want)
				}
			}
		})
	}
}

func TestEncode_Unsupported(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testGray(), Format(99))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(99)) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG}, {".PNG", PNG}, {"bmp", BMP}, {"tif", TIFF}, {".tiff", TIFF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noise.bmp")
	if err := Save(path, testGray()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	if _, err := bmp.Decode(f); err != nil {
		t.Errorf("saved file is not a BMP: %v", err)
	}

	if err := Save(filepath.Join(dir, "noise.gif"), testGray()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestResize(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	dst, err := Resize(src, 25, 5)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if b := dst.Bounds(); b.Dx() != 25 || b.Dy() != 5 {
		t.Errorf("Bounds = %v, want 25x5", b)
	}
	if c := dst.NRGBAAt(12, 2); c.R < 198 || c.R > 202 || c.A < 254 {
		t.Errorf("uniform image resampled to %v, want gray 200", c)
	}
	if _, err := Resize(src, 0, 5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 5) error = %v, want ErrInvalidSize", err)
	}
}
