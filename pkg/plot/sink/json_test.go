package sink

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/matzehuels/colplot/pkg/plot"
	"gonum.org/v1/gonum/mat"
)

func testFigure(t *testing.T, figType plot.FigType, styles []plot.Style) *plot.Figure {
	t.Helper()
	cols := len(styles)
	x := mat.NewDense(12, cols, nil)
	y := mat.NewDense(12, cols, nil)
	for c := range cols {
		for r := range 12 {
			x.Set(r, c, float64(r))
			y.Set(r, c, float64(r*c))
		}
	}
	fig, err := plot.Columns(figType, x, y, styles, plot.WithSize(4, 2))
	if err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	return fig
}

func TestRenderJSONStructure(t *testing.T) {
	fig := testFigure(t, plot.FigSubplots, []plot.Style{plot.StyleLine, plot.StyleScatter, plot.StyleScatter})

	data, err := RenderJSON(fig, WithJSONDataset("demo"), WithJSONSeed(42))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if out.FigType != "subplots" {
		t.Errorf("FigType = %q, want %q", out.FigType, "subplots")
	}
	if out.Columns != 3 {
		t.Errorf("Columns = %d, want 3", out.Columns)
	}
	if out.Dataset != "demo" {
		t.Errorf("Dataset = %q, want %q", out.Dataset, "demo")
	}
	if out.Seed == nil || *out.Seed != 42 {
		t.Errorf("Seed = %v, want 42", out.Seed)
	}
	if len(out.Surfaces) != 3 {
		t.Fatalf("len(Surfaces) = %d, want 3", len(out.Surfaces))
	}
	for i, s := range out.Surfaces {
		if len(s.Traces) != 1 {
			t.Errorf("Surfaces[%d] traces = %d, want 1", i, len(s.Traces))
		}
	}
	if got := out.Surfaces[2].XLabel; got != "x" {
		t.Errorf("bottom surface XLabel = %q, want %q", got, "x")
	}
	if got := out.Surfaces[0].XLabel; got != "" {
		t.Errorf("top surface XLabel = %q, want empty", got)
	}
}

func TestRenderJSONTraces(t *testing.T) {
	fig := testFigure(t, plot.FigSingle, []plot.Style{plot.StyleScatter, plot.StyleLine})

	data, err := RenderJSON(fig)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(out.Surfaces) != 1 {
		t.Fatalf("len(Surfaces) = %d, want 1", len(out.Surfaces))
	}
	traces := out.Surfaces[0].Traces
	if len(traces) != 2 {
		t.Fatalf("len(Traces) = %d, want 2", len(traces))
	}

	if traces[0].Glyph != "circle" {
		t.Errorf("scatter trace glyph = %q, want %q", traces[0].Glyph, "circle")
	}
	if traces[1].Glyph != "" {
		t.Errorf("line trace glyph = %q, want empty", traces[1].Glyph)
	}

	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for i, tr := range traces {
		if !hex.MatchString(tr.Color) {
			t.Errorf("Traces[%d].Color = %q, want hex color", i, tr.Color)
		}
		if tr.Points != 12 {
			t.Errorf("Traces[%d].Points = %d, want 12", i, tr.Points)
		}
	}

	if len(out.Legend) != 2 {
		t.Errorf("len(Legend) = %d, want 2", len(out.Legend))
	}
}

func TestRenderJSONCompact(t *testing.T) {
	fig := testFigure(t, plot.FigSingle, []plot.Style{plot.StyleLine})

	data, err := RenderJSON(fig, WithJSONIndent(""))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	if bytes.ContainsRune(data, '\n') {
		t.Error("compact output contains newlines")
	}
}
