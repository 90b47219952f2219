package plot

import "testing"

func TestSeriesColorsDeterministic(t *testing.T) {
	a := seriesColors(7, 6)
	b := seriesColors(7, 6)
	if len(a) != 6 {
		t.Fatalf("len(seriesColors) = %d, want 6", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("color %d differs across calls with the same seed", i)
		}
	}
}

func TestSeriesColorsSeedVaries(t *testing.T) {
	a := seriesColors(1, 4)
	b := seriesColors(2, 4)
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced an identical palette")
	}
}

func TestSeriesColorsDistinct(t *testing.T) {
	colors := seriesColors(DefaultSeed, MaxColumns)
	seen := make(map[any]bool)
	for i, c := range colors {
		if seen[c] {
			t.Errorf("color %d repeats an earlier palette entry", i)
		}
		seen[c] = true
	}
}

func TestSeriesColorsReadableRanges(t *testing.T) {
	for _, c := range seriesColors(3, MaxColumns) {
		r, g, b, _ := c.RGBA()
		if r == 0xffff && g == 0xffff && b == 0xffff {
			t.Error("series color is pure white")
		}
		if r == 0 && g == 0 && b == 0 {
			t.Error("series color is pure black")
		}
	}
}
