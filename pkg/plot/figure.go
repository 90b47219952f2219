package plot

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/colplot/pkg/errors"
	"gonum.org/v1/gonum/mat"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FigType selects the figure layout.
type FigType string

const (
	// FigSingle draws every column onto one shared surface.
	FigSingle FigType = "single"
	// FigSubplots stacks one surface per column vertically.
	FigSubplots FigType = "subplots"
)

// Style selects the trace kind for one column.
type Style string

const (
	// StyleLine connects the column's points with a line.
	StyleLine Style = "line"
	// StyleScatter marks each point with the column's palette glyph.
	StyleScatter Style = "scatter"
)

const (
	// MaxColumns is the widest table Columns accepts, bounded by the
	// marker palette so scatter columns never share a glyph.
	MaxColumns = 10

	// DefaultTitle is the headline used for shared-surface figures.
	DefaultTitle = "x vs. y, column-wise"

	// DefaultWidthIn and DefaultHeightIn size the canvas in inches;
	// height is per surface, so a five-column subplot figure is five
	// times as tall as a single one.
	DefaultWidthIn  = 10.0
	DefaultHeightIn = 5.0

	// DefaultSeed feeds the series color generator.
	DefaultSeed uint64 = 42
)

// Option adjusts figure composition.
type Option func(*config)

type config struct {
	title    string
	widthIn  float64
	heightIn float64
	seed     uint64
}

// WithTitle overrides the shared-surface headline. Subplot surfaces keep
// their per-column titles.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithSize sets the canvas width and per-surface height in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(c *config) { c.widthIn = widthIn; c.heightIn = heightIn }
}

// WithSeed fixes the series color generator seed.
func WithSeed(seed uint64) Option { return func(c *config) { c.seed = seed } }

func newConfig(opts ...Option) config {
	c := config{
		title:    DefaultTitle,
		widthIn:  DefaultWidthIn,
		heightIn: DefaultHeightIn,
		seed:     DefaultSeed,
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.widthIn = max(c.widthIn, 1)
	c.heightIn = max(c.heightIn, 1)
	return c
}

// Figure is a composed column plot, ready to draw.
type Figure struct {
	// FigType records the layout the figure was composed with.
	FigType FigType
	// Columns is the number of data columns the figure covers.
	Columns int
	// Surfaces holds the drawing surfaces top to bottom. FigSingle
	// figures have exactly one.
	Surfaces []*gplot.Plot
	// Traces describes every trace in draw order.
	Traces []Trace
	// Legend lists the legend entries, empty unless the figure is a
	// shared surface with more than one column.
	Legend []string
	// Width and SurfaceHeight are the canvas dimensions; total height
	// is SurfaceHeight per surface.
	Width         vg.Length
	SurfaceHeight vg.Length
}

// Trace records what was drawn for one column.
type Trace struct {
	Column  int
	Surface int
	Style   Style
	Label   string
	// Glyph is the marker palette index for scatter traces, -1 for lines.
	Glyph  int
	Color  color.Color
	Points int
}

// ParseFigType converts a user-supplied figure type tag.
func ParseFigType(s string) (FigType, error) {
	switch FigType(s) {
	case FigSingle, FigSubplots:
		return FigType(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidFigType,
		`invalid figure type: %q (must be "single" or "subplots")`, s)
}

// ParseStyle converts a user-supplied trace style tag.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleLine, StyleScatter:
		return Style(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidStyle,
		`invalid style: %q (must be "line" or "scatter")`, s)
}

// ParseStyles converts a list of style tags, failing on the first bad one.
func ParseStyles(tags []string) ([]Style, error) {
	out := make([]Style, len(tags))
	for i, tag := range tags {
		s, err := ParseStyle(tag)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Columns draws one trace per column of y against the matching column of x.
//
// With FigSingle every trace shares one surface; with FigSubplots each
// column gets its own surface in a vertical stack. styles picks the trace
// kind per column and must have one entry per column.
//
// An unknown style tag aborts composition at the offending column. The
// figure built so far is returned together with the error, so callers can
// inspect or discard the partial result; every fully composed column
// before the bad one is already drawn.
func Columns(figType FigType, x, y *mat.Dense, styles []Style, opts ...Option) (*Figure, error) {
	cfg := newConfig(opts...)

	if _, err := ParseFigType(string(figType)); err != nil {
		return nil, err
	}
	if err := validateTables(x, y); err != nil {
		return nil, err
	}
	rows, cols := x.Dims()
	if len(styles) != cols {
		return nil, errors.New(errors.ErrCodeStyleCount,
			"got %d style tags for %d columns", len(styles), cols)
	}

	surfaces := 1
	if figType == FigSubplots {
		surfaces = cols
	}

	fig := &Figure{
		FigType:       figType,
		Columns:       cols,
		Surfaces:      make([]*gplot.Plot, surfaces),
		Width:         vg.Length(cfg.widthIn) * vg.Inch,
		SurfaceHeight: vg.Length(cfg.heightIn) * vg.Inch,
	}
	for i := range fig.Surfaces {
		fig.Surfaces[i] = gplot.New()
	}

	palette := seriesColors(cfg.seed, cols)
	shared := surfaces == 1

	for i := range cols {
		surface := 0
		if !shared {
			surface = i
		}
		p := fig.Surfaces[surface]
		label := fmt.Sprintf("Plot %d", i)
		if !shared {
			p.Title.Text = label
			p.Y.Label.Text = "y"
		}

		trace := Trace{
			Column: i, Surface: surface, Label: label,
			Glyph: -1, Color: palette[i], Points: rows,
		}

		switch styles[i] {
		case StyleLine:
			ln, err := plotter.NewLine(columnXYs(x, y, i))
			if err != nil {
				return fig, errors.Wrap(errors.ErrCodeInvalidDataset, err, "column %d", i)
			}
			ln.LineStyle.Color = palette[i]
			p.Add(ln)
			if shared && cols > 1 {
				p.Legend.Add(label, ln)
				fig.Legend = append(fig.Legend, label)
			}
			trace.Style = StyleLine
		case StyleScatter:
			sc, err := plotter.NewScatter(columnXYs(x, y, i))
			if err != nil {
				return fig, errors.Wrap(errors.ErrCodeInvalidDataset, err, "column %d", i)
			}
			sc.GlyphStyle.Color = palette[i]
			sc.GlyphStyle.Radius = vg.Points(3)
			sc.GlyphStyle.Shape = Glyph(i)
			p.Add(sc)
			if shared && cols > 1 {
				p.Legend.Add(label, sc)
				fig.Legend = append(fig.Legend, label)
			}
			trace.Style = StyleScatter
			trace.Glyph = i % MaxColumns
		default:
			return fig, errors.New(errors.ErrCodeInvalidStyle,
				`column %d has style %q (must be "line" or "scatter")`, i, string(styles[i]))
		}

		fig.Traces = append(fig.Traces, trace)
	}

	// Only the bottom surface carries the x-axis label.
	fig.Surfaces[surfaces-1].X.Label.Text = "x"

	if shared {
		s := fig.Surfaces[0]
		s.Title.Text = cfg.title
		s.Y.Label.Text = "y"
		if cols > 1 {
			s.Legend.Top = true
		}
	}

	return fig, nil
}

func validateTables(x, y *mat.Dense) error {
	if x == nil || y == nil {
		return errors.New(errors.ErrCodeInvalidInput, "x and y tables must be non-nil")
	}
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr != yr || xc != yc {
		return errors.New(errors.ErrCodeShapeMismatch,
			"x is %dx%d but y is %dx%d", xr, xc, yr, yc)
	}
	if xc == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "tables must have at least one column")
	}
	if xc > MaxColumns {
		return errors.New(errors.ErrCodeTooManyColumns,
			"%d columns exceed the marker palette (max %d)", xc, MaxColumns)
	}
	return nil
}

func columnXYs(x, y *mat.Dense, col int) plotter.XYs {
	rows, _ := x.Dims()
	pts := make(plotter.XYs, rows)
	for r := range rows {
		pts[r].X = x.At(r, col)
		pts[r].Y = y.At(r, col)
	}
	return pts
}
