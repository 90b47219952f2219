package plot

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	cos30 = vg.Length(math.Cos(math.Pi / 6))
	sin30 = vg.Length(math.Sin(math.Pi / 6))
	sin60 = vg.Length(math.Sin(math.Pi / 3))
)

// glyphPalette fixes the marker shape per column index. The order is part
// of the figure contract: scatter column i always draws glyphPalette[i].
var glyphPalette = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.CrossGlyph{},
	draw.BoxGlyph{},
	draw.PlusGlyph{},
	DiamondGlyph{},
	NablaGlyph{},
	draw.PyramidGlyph{},
	draw.RingGlyph{},
	draw.TriangleGlyph{},
	draw.SquareGlyph{},
}

var glyphNames = []string{
	"circle", "cross", "box", "plus", "diamond",
	"nabla", "pyramid", "ring", "triangle", "square",
}

// Glyph returns the marker shape for column i.
func Glyph(i int) draw.GlyphDrawer { return glyphPalette[i%len(glyphPalette)] }

// GlyphName returns a stable tag for column i's marker shape.
func GlyphName(i int) string { return glyphNames[i%len(glyphNames)] }

// DiamondGlyph is a glyph that draws a filled rhombus.
type DiamondGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	p := make(vg.Path, 0, 5)
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

// NablaGlyph is a glyph that draws a filled triangle pointing down.
type NablaGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (NablaGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius + (sty.Radius-sty.Radius*sin60)/2
	p := make(vg.Path, 0, 4)
	p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r*cos30, Y: pt.Y + r*sin30})
	p.Line(vg.Point{X: pt.X + r*cos30, Y: pt.Y + r*sin30})
	p.Close()
	c.Fill(p)
}
