package sink

import (
	"bytes"

	"github.com/matzehuels/colplot/pkg/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	embedFonts bool
}

// WithPDFEmbeddedFonts embeds the fonts into the document for portable
// print output.
func WithPDFEmbeddedFonts() PDFOption {
	return func(r *pdfRenderer) { r.embedFonts = true }
}

// RenderPDF renders the figure as a single-page PDF document sized to
// the figure's canvas.
func RenderPDF(f *plot.Figure, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	c := vgpdf.New(f.CanvasSize())
	c.EmbedFonts(r.embedFonts)
	f.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
