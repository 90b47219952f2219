package plot

import (
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name    string
		figType FigType
		cols    int
		wantW   vg.Length
		wantH   vg.Length
	}{
		{name: "single", figType: FigSingle, cols: 4, wantW: 10 * vg.Inch, wantH: 5 * vg.Inch},
		{name: "subplots", figType: FigSubplots, cols: 3, wantW: 10 * vg.Inch, wantH: 15 * vg.Inch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := testTables(10, tt.cols)
			fig, err := Columns(tt.figType, x, y, lineStyles(tt.cols))
			if err != nil {
				t.Fatalf("Columns() error = %v", err)
			}
			w, h := fig.CanvasSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CanvasSize() = (%v, %v), want (%v, %v)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCanvasSizeCustom(t *testing.T) {
	x, y := testTables(10, 2)
	fig, err := Columns(FigSubplots, x, y, lineStyles(2), WithSize(8, 3))
	if err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	w, h := fig.CanvasSize()
	if w != 8*vg.Inch || h != 6*vg.Inch {
		t.Errorf("CanvasSize() = (%v, %v), want (%v, %v)", w, h, 8*vg.Inch, 6*vg.Inch)
	}
}

func TestFigureDraw(t *testing.T) {
	tests := []struct {
		name    string
		figType FigType
		cols    int
		styles  []Style
	}{
		{name: "single line", figType: FigSingle, cols: 1, styles: []Style{StyleLine}},
		{name: "single mixed", figType: FigSingle, cols: 2, styles: []Style{StyleLine, StyleScatter}},
		{name: "subplots scatter", figType: FigSubplots, cols: 3, styles: []Style{StyleScatter, StyleScatter, StyleScatter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := testTables(25, tt.cols)
			fig, err := Columns(tt.figType, x, y, tt.styles, WithSize(4, 2))
			if err != nil {
				t.Fatalf("Columns() error = %v", err)
			}
			fig.Draw(draw.New(vgimg.New(fig.CanvasSize())))
		})
	}
}
