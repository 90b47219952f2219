package plot

import (
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// subplotPadFrac is the vertical gap between stacked surfaces as a
	// fraction of one surface height. Each surface already embeds its
	// own axis decorations, so a small gap is enough to keep a title
	// clear of the axis above it.
	subplotPadFrac = 0.06
	// canvasPadFrac is the outer margin on all sides as a fraction of
	// the canvas width.
	canvasPadFrac = 0.015
)

// CanvasSize returns the natural canvas dimensions for the figure: fixed
// width, one surface height per stacked surface.
func (f *Figure) CanvasSize() (w, h vg.Length) {
	return f.Width, f.SurfaceHeight * vg.Length(len(f.Surfaces))
}

// Draw renders the figure onto dc. Shared-surface figures fill the whole
// canvas; subplot figures are tiled top to bottom in column order.
func (f *Figure) Draw(dc draw.Canvas) {
	if len(f.Surfaces) == 1 {
		f.Surfaces[0].Draw(dc)
		return
	}

	rows := len(f.Surfaces)
	plots := make([][]*gplot.Plot, rows)
	for i, p := range f.Surfaces {
		plots[i] = []*gplot.Plot{p}
	}

	pad := f.SurfaceHeight * subplotPadFrac
	margin := f.Width * canvasPadFrac
	tiles := draw.Tiles{
		Rows: rows, Cols: 1,
		PadY:      pad,
		PadTop:    margin,
		PadBottom: margin,
		PadLeft:   margin,
		PadRight:  margin,
	}

	canvases := gplot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
}
