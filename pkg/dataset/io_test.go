package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/colplot/pkg/errors"
)

func TestJSONRoundTrip(t *testing.T) {
	src := Demo(13)

	var buf bytes.Buffer
	if err := WriteJSON(src, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got.Name != src.Name {
		t.Errorf("Name = %q, want %q", got.Name, src.Name)
	}
	gr, gc := got.Dims()
	sr, sc := src.Dims()
	if gr != sr || gc != sc {
		t.Fatalf("Dims() = (%d, %d), want (%d, %d)", gr, gc, sr, sc)
	}
	for c := range gc {
		if got.Labels[c] != src.Labels[c] {
			t.Errorf("Labels[%d] = %q, want %q", c, got.Labels[c], src.Labels[c])
		}
		for r := range gr {
			if got.Y.At(r, c) != src.Y.At(r, c) {
				t.Fatalf("y[%d][%d] differs after round trip", r, c)
			}
			if got.X.At(r, c) != src.X.At(r, c) {
				t.Fatalf("x[%d][%d] differs after round trip", r, c)
			}
		}
	}
}

func TestExportImportJSON(t *testing.T) {
	src := Demo(13)
	path := filepath.Join(t.TempDir(), "demo.json")

	if err := ExportJSON(src, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if _, cols := got.Dims(); cols != 8 {
		t.Errorf("cols = %d, want 8", cols)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json"))
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("GetCode(err) = %q, want %q", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestReadJSONRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "{"},
		{name: "no columns", input: `{"x": [], "y": []}`},
		{name: "column count mismatch", input: `{"x": [[1, 2]], "y": [[1, 2], [3, 4]]}`},
		{name: "ragged rows", input: `{"x": [[1, 2]], "y": [[1]]}`},
		{name: "no rows", input: `{"x": [[]], "y": [[]]}`},
		{name: "label mismatch", input: `{"labels": ["a", "b"], "x": [[1, 2]], "y": [[3, 4]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if errors.GetCode(err) != errors.ErrCodeInvalidDataset {
				t.Errorf("GetCode(err) = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidDataset)
			}
		})
	}
}
