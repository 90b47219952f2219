// Package sink provides output format renderers for column figures.
//
// # Overview
//
// A "sink" turns a composed [plot.Figure] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics, the default interchange format
//   - PNG: Raster output at a configurable DPI
//   - PDF: Print-ready vector output
//   - JSON: Structural description of the figure for external tools
//
// All renderers take the canvas size from the figure itself, so a
// subplot figure grows taller with each extra column without any sink
// configuration.
//
// Basic usage:
//
//	png, err := sink.RenderPNG(fig, sink.WithDPI(192))
//
// # JSON Output
//
// [RenderJSON] does not rasterize anything. It emits the figure's
// structure: layout, surface titles and axis labels, and one record per
// trace with its style, palette glyph, and color. This is meant for
// asserting on figure composition and for feeding external tooling;
// options like [WithJSONDataset] record where the data came from.
//
// # Adding New Formats
//
//  1. Create a renderer: func RenderFoo(f *plot.Figure, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Draw the figure onto the format's vg canvas via f.Draw
//  4. Register the format in internal/cli for command-line support
//
// [plot.Figure]: github.com/matzehuels/colplot/pkg/plot.Figure
package sink
