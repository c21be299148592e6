package parallel

import (
	"slices"
	"testing"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		bandHeight int
		want       []Band
	}{
		{"exact", 8, 4, []Band{{0, 4}, {4, 8}}},
		{"remainder", 10, 4, []Band{{0, 4}, {4, 8}, {8, 10}}},
		{"single", 3, 16, []Band{{0, 3}}},
		{"default height", 20, 0, []Band{{0, 16}, {16, 20}}},
		{"empty", 0, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRows(tt.height, tt.bandHeight)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitRows(%d, %d) = %v, want %v", tt.height, tt.bandHeight, got, tt.want)
			}
		})
	}
}

func TestSplitRows_CoversHeight(t *testing.T) {
	for h := 1; h < 100; h++ {
		total := 0
		for _, b := range SplitRows(h, 7) {
			total += b.Rows()
		}
		if total != h {
			t.Errorf("SplitRows(%d, 7) covers %d rows", h, total)
		}
	}
}
