package cli

import (
	"reflect"
	"testing"

	"github.com/matzehuels/colplot/pkg/dataset"
)

func TestFormatColumns(t *testing.T) {
	tests := []struct {
		cols []int
		want string
	}{
		{nil, "all"},
		{[]int{}, "all"},
		{[]int{3}, "3"},
		{[]int{0, 2, 7}, "0,2,7"},
	}

	for _, tt := range tests {
		got := formatColumns(tt.cols)
		if got != tt.want {
			t.Errorf("formatColumns(%v) = %q, want %q", tt.cols, got, tt.want)
		}
	}
}

func TestFormatList(t *testing.T) {
	if got := formatList(nil); got != "—" {
		t.Errorf("formatList(nil) = %q, want placeholder", got)
	}
	if got := formatList([]string{"line", "scatter"}); got != "line,scatter" {
		t.Errorf("formatList() = %q, want %q", got, "line,scatter")
	}
}

func TestDemoTarget(t *testing.T) {
	s, ok := dataset.BuiltinScenario("cos-pair")
	if !ok {
		t.Fatal("builtin scenario cos-pair missing")
	}

	cmd := newDemoCmd()
	opts := &demoOpts{seed: 9}

	tgt := demoTarget(s, cmd, opts, "")
	if tgt.label != "cos-pair" {
		t.Errorf("label = %q, want %q", tgt.label, "cos-pair")
	}
	if tgt.opts.Seed != 9 {
		t.Errorf("Seed = %d, want 9", tgt.opts.Seed)
	}
	if tgt.opts.Dataset != "demo" {
		t.Errorf("Dataset = %q, want %q", tgt.opts.Dataset, "demo")
	}
	if want := []int{0, 2}; !reflect.DeepEqual(tgt.opts.Columns, want) {
		t.Errorf("Columns = %v, want %v", tgt.opts.Columns, want)
	}
}

func TestDemoTargetFigOverride(t *testing.T) {
	s, ok := dataset.BuiltinScenario("cos-pair")
	if !ok {
		t.Fatal("builtin scenario cos-pair missing")
	}

	tgt := demoTarget(s, newDemoCmd(), &demoOpts{}, "subplots")
	if tgt.opts.FigType != "subplots" {
		t.Errorf("FigType = %q, want %q", tgt.opts.FigType, "subplots")
	}
}

func TestDemoTargetFormatOverride(t *testing.T) {
	s, ok := dataset.BuiltinScenario("all-single")
	if !ok {
		t.Fatal("builtin scenario all-single missing")
	}

	cmd := newDemoCmd()
	if err := cmd.Flags().Set("format", "png,json"); err != nil {
		t.Fatal(err)
	}

	tgt := demoTarget(s, cmd, &demoOpts{formats: "png,json"}, "")
	if want := []string{"png", "json"}; !reflect.DeepEqual(tgt.opts.Formats, want) {
		t.Errorf("Formats = %v, want %v", tgt.opts.Formats, want)
	}
}
