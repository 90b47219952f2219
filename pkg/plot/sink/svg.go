package sink

import (
	"bytes"

	"github.com/matzehuels/colplot/pkg/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFonts bool
}

// WithSVGEmbeddedFonts embeds the fonts into the document, so the output
// renders identically on systems without the fonts installed. Output is
// considerably larger.
func WithSVGEmbeddedFonts() SVGOption {
	return func(r *svgRenderer) { r.embedFonts = true }
}

// RenderSVG renders the figure as an SVG document. The viewport matches
// the figure's canvas size, so vector output scales without clipping.
func RenderSVG(f *plot.Figure, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.CanvasSize()
	c := vgsvg.NewWith(vgsvg.UseWH(w, h), vgsvg.EmbedFonts(r.embedFonts))
	f.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
