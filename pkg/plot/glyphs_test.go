package plot

import (
	"fmt"
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestGlyphPaletteCoversColumnLimit(t *testing.T) {
	if len(glyphPalette) != MaxColumns {
		t.Fatalf("len(glyphPalette) = %d, want %d", len(glyphPalette), MaxColumns)
	}
	if len(glyphNames) != MaxColumns {
		t.Fatalf("len(glyphNames) = %d, want %d", len(glyphNames), MaxColumns)
	}

	seen := make(map[string]bool)
	for i := range glyphPalette {
		kind := fmt.Sprintf("%T", Glyph(i))
		if seen[kind] {
			t.Errorf("Glyph(%d) = %s, shape reused", i, kind)
		}
		seen[kind] = true
	}
}

func TestGlyphByIndex(t *testing.T) {
	for i := range glyphPalette {
		if Glyph(i) != glyphPalette[i] {
			t.Errorf("Glyph(%d) does not match palette entry %d", i, i)
		}
	}
	if Glyph(MaxColumns) != glyphPalette[0] {
		t.Errorf("Glyph(%d) should wrap to the first palette entry", MaxColumns)
	}
}

func TestGlyphNames(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{i: 0, want: "circle"},
		{i: 4, want: "diamond"},
		{i: 5, want: "nabla"},
		{i: 9, want: "square"},
	}

	for _, tt := range tests {
		if got := GlyphName(tt.i); got != tt.want {
			t.Errorf("GlyphName(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestCustomGlyphsDraw(t *testing.T) {
	c := draw.New(vgimg.New(vg.Points(20), vg.Points(20)))
	sty := draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(4),
	}
	pt := vg.Point{X: vg.Points(10), Y: vg.Points(10)}

	DiamondGlyph{}.DrawGlyph(&c, sty, pt)
	NablaGlyph{}.DrawGlyph(&c, sty, pt)
}
