package procgen

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestFloat64_Range(t *testing.T) {
	g := NewXorshift128Plus(3)
	for range 10000 {
		v := Float64(&g)
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", v)
		}
	}
}

func TestIntN(t *testing.T) {
	g := NewXorshift64Star(9)
	tests := []int{1, 2, 3, 7, 256, 1000}
	for _, n := range tests {
		for range 2000 {
			if v := IntN(&g, n); v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestIntN_NonPositive(t *testing.T) {
	g := NewXorshift64Star(9)
	before := g.State()
	if v := IntN(&g, 0); v != 0 {
		t.Errorf("IntN(0) = %d, want 0", v)
	}
	if v := IntN(&g, -4); v != 0 {
		t.Errorf("IntN(-4) = %d, want 0", v)
	}
	if g.State() != before {
		t.Error("IntN with n <= 0 should not consume output")
	}
}

func TestIntN_CoversAllValues(t *testing.T) {
	g := NewXorshift1024Star(4)
	var counts [6]int
	for range 6000 {
		counts[IntN(&g, 6)]++
	}
	for i, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("value %d drawn %d times out of 6000, want about 1000", i, c)
		}
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	g := NewXorshift64Star(21)
	s := make([]int, 100)
	for i := range s {
		s[i] = i
	}
	Shuffle(&g, len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })

	sorted := slices.Clone(s)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("shuffled slice is not a permutation: %v", s)
		}
	}
	if slices.IsSorted(s) {
		t.Error("Shuffle left 100 elements in order")
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	run := func() []int {
		g := NewXorshift64Star(21)
		s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		Shuffle(&g, len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		return s
	}
	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Errorf("Shuffle not deterministic: %v vs %v", a, b)
	}
}

func TestMathRandV2Adapter(t *testing.T) {
	a := NewXorshift128Plus(17)
	b := NewXorshift128Plus(17)
	ra := rand.New(&a)
	rb := rand.New(&b)
	for range 100 {
		if x, y := ra.IntN(1000), rb.IntN(1000); x != y {
			t.Fatalf("rand.New streams diverged: %d vs %d", x, y)
		}
	}
}

func TestSplitmix64_ZeroIsNonZero(t *testing.T) {
	if splitmix64(0) == 0 {
		t.Error("splitmix64(0) = 0, want non-zero")
	}
}
