package sink

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/matzehuels/colplot/pkg/plot"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	dataset string
	seed    uint64
	hasSeed bool
	indent  string
}

// WithJSONDataset records the source dataset name in the JSON output.
func WithJSONDataset(name string) JSONOption {
	return func(r *jsonRenderer) { r.dataset = name }
}

// WithJSONSeed records the color seed in the JSON output, enabling
// reproducible re-rendering with the same series colors.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.hasSeed = true }
}

// WithJSONIndent overrides the two-space indent. An empty string yields
// compact single-line output.
func WithJSONIndent(indent string) JSONOption {
	return func(r *jsonRenderer) { r.indent = indent }
}

type jsonOutput struct {
	FigType  string        `json:"fig_type"`
	Columns  int           `json:"columns"`
	WidthPt  float64       `json:"width_pt"`
	HeightPt float64       `json:"height_pt"`
	Dataset  string        `json:"dataset,omitempty"`
	Seed     *uint64       `json:"seed,omitempty"`
	Legend   []string      `json:"legend,omitempty"`
	Surfaces []jsonSurface `json:"surfaces"`
}

type jsonSurface struct {
	Index  int         `json:"index"`
	Title  string      `json:"title,omitempty"`
	XLabel string      `json:"x_label,omitempty"`
	YLabel string      `json:"y_label,omitempty"`
	Traces []jsonTrace `json:"traces"`
}

type jsonTrace struct {
	Column int    `json:"column"`
	Style  string `json:"style"`
	Label  string `json:"label"`
	Glyph  string `json:"glyph,omitempty"`
	Color  string `json:"color"`
	Points int    `json:"points"`
}

// RenderJSON exports the figure's structure as a pretty-printed JSON
// document: layout, canvas size, per-surface titles and axis labels, and
// one record per trace with its style, palette glyph, and color. Nothing
// is rasterized; this is the interchange format for external tools and
// for asserting on figure composition.
func RenderJSON(f *plot.Figure, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{indent: "  "}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.CanvasSize()
	out := jsonOutput{
		FigType:  string(f.FigType),
		Columns:  f.Columns,
		WidthPt:  float64(w),
		HeightPt: float64(h),
		Dataset:  r.dataset,
		Legend:   f.Legend,
		Surfaces: buildJSONSurfaces(f),
	}
	if r.hasSeed {
		out.Seed = &r.seed
	}

	if r.indent == "" {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", r.indent)
}

func buildJSONSurfaces(f *plot.Figure) []jsonSurface {
	surfaces := make([]jsonSurface, len(f.Surfaces))
	for i, s := range f.Surfaces {
		surfaces[i] = jsonSurface{
			Index:  i,
			Title:  s.Title.Text,
			XLabel: s.X.Label.Text,
			YLabel: s.Y.Label.Text,
			Traces: []jsonTrace{},
		}
	}

	for _, tr := range f.Traces {
		jt := jsonTrace{
			Column: tr.Column,
			Style:  string(tr.Style),
			Label:  tr.Label,
			Color:  hexColor(tr.Color),
			Points: tr.Points,
		}
		if tr.Glyph >= 0 {
			jt.Glyph = plot.GlyphName(tr.Glyph)
		}
		surfaces[tr.Surface].Traces = append(surfaces[tr.Surface].Traces, jt)
	}
	return surfaces
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
