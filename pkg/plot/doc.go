// Package plot composes column-wise figures from paired data tables.
//
// # Overview
//
// The core operation is [Columns]: given an x table and a y table of the
// same shape, it draws one trace per column, pairing column i of x with
// column i of y. Two layouts are supported:
//
//   - [FigSingle]: every trace shares one drawing surface, with a legend
//     once more than one column is present.
//   - [FigSubplots]: each column gets its own surface in a vertical stack,
//     titled "Plot i", with the x-axis label only on the bottom surface.
//
// Each column carries a style tag selecting the trace kind: [StyleLine]
// connects the points, [StyleScatter] draws the column's palette marker at
// each point. Marker shapes are assigned by column index from a fixed
// ten-entry palette, so column 3 always gets the same glyph regardless of
// layout. Series colors are random but seeded, so a figure is reproducible
// for a given seed.
//
// # Composing and Rendering
//
// A figure is composed once and can then be drawn onto any vg canvas:
//
//	fig, err := plot.Columns(plot.FigSubplots, x, y, styles)
//	if err != nil {
//	    return err
//	}
//	c := vgimg.New(fig.CanvasSize())
//	fig.Draw(draw.New(c))
//
// The [sink] subpackage wraps this for the common output formats (SVG,
// PNG, PDF, and a structural JSON description).
//
// [sink]: github.com/matzehuels/colplot/pkg/plot/sink
package plot
