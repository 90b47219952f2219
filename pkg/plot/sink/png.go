package sink

import (
	"bytes"

	"github.com/matzehuels/colplot/pkg/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultDPI is the raster resolution used when no option overrides it.
const DefaultDPI = 96

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi int
}

// WithDPI sets the raster resolution (default 96; use 192 for 2x output).
func WithDPI(dpi int) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// RenderPNG renders the figure as a PNG image. Pixel dimensions are the
// figure's canvas size in inches times the DPI.
func RenderPNG(f *plot.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	r.dpi = max(r.dpi, 1)

	w, h := f.CanvasSize()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.dpi))
	f.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
