package dataset

import (
	"math"
	"testing"

	"github.com/matzehuels/colplot/pkg/errors"
)

func TestBuild(t *testing.T) {
	d, err := Build(BuildSpec{
		Name:   "trig",
		Points: 50,
		XMin:   0, XMax: 10,
		Generators: []Generator{Cosine{Freq: 1}, Sine{Freq: 2}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	rows, cols := d.Dims()
	if rows != 50 || cols != 2 {
		t.Fatalf("Dims() = (%d, %d), want (50, 2)", rows, cols)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	// both x columns carry the same linspace
	for r := range rows {
		if d.X.At(r, 0) != d.X.At(r, 1) {
			t.Fatalf("x columns diverge at row %d", r)
		}
	}
	if d.X.At(0, 0) != 0 || d.X.At(49, 0) != 10 {
		t.Errorf("x endpoints = (%v, %v), want (0, 10)", d.X.At(0, 0), d.X.At(49, 0))
	}
	if d.Labels[1] != "sin(2x)" {
		t.Errorf("Labels[1] = %q, want %q", d.Labels[1], "sin(2x)")
	}
}

func TestBuildDefaults(t *testing.T) {
	d, err := Build(BuildSpec{Generators: []Generator{Sine{Freq: 1}}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	rows, _ := d.Dims()
	if rows != DefaultPoints {
		t.Errorf("rows = %d, want %d", rows, DefaultPoints)
	}
	if d.X.At(0, 0) != DefaultXMin || d.X.At(rows-1, 0) != DefaultXMax {
		t.Errorf("x range = [%v, %v], want [%v, %v]",
			d.X.At(0, 0), d.X.At(rows-1, 0), DefaultXMin, DefaultXMax)
	}
}

func TestBuildErrors(t *testing.T) {
	gens := []Generator{Sine{Freq: 1}}

	tests := []struct {
		name string
		spec BuildSpec
	}{
		{name: "no generators", spec: BuildSpec{Points: 10, XMin: 0, XMax: 1}},
		{name: "one point", spec: BuildSpec{Points: 1, XMin: 0, XMax: 1, Generators: gens}},
		{name: "empty range", spec: BuildSpec{Points: 10, XMin: 2, XMax: 2, Generators: gens}},
		{name: "inverted range", spec: BuildSpec{Points: 10, XMin: 3, XMax: 1, Generators: gens}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.spec)
			if errors.GetCode(err) != errors.ErrCodeInvalidDataset {
				t.Errorf("GetCode(err) = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidDataset)
			}
		})
	}
}

func TestDemoShape(t *testing.T) {
	d := Demo(42)

	rows, cols := d.Dims()
	if rows != 80 || cols != 8 {
		t.Fatalf("Dims() = (%d, %d), want (80, 8)", rows, cols)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if d.Name != DemoName {
		t.Errorf("Name = %q, want %q", d.Name, DemoName)
	}

	wantLabels := []string{
		"cos(4x)", "sin(7x)", "noisy cos(4x)", "noisy sin(7x)",
		"poly-deg-2", "poly-deg-5", "noisy poly-deg-2", "noisy poly-deg-5",
	}
	for i, want := range wantLabels {
		if d.Labels[i] != want {
			t.Errorf("Labels[%d] = %q, want %q", i, d.Labels[i], want)
		}
	}
}

func TestDemoCleanColumns(t *testing.T) {
	d := Demo(7)

	for r := range 80 {
		x := d.X.At(r, 0)
		if got, want := d.Y.At(r, 0), math.Cos(4*x); got != want {
			t.Fatalf("column 0 row %d = %v, want %v", r, got, want)
		}
		if got, want := d.Y.At(r, 1), math.Sin(7*x); got != want {
			t.Fatalf("column 1 row %d = %v, want %v", r, got, want)
		}
	}
}

func TestDemoDeterministic(t *testing.T) {
	a, b := Demo(3), Demo(3)
	rows, cols := a.Dims()
	for c := range cols {
		for r := range rows {
			if a.Y.At(r, c) != b.Y.At(r, c) {
				t.Fatalf("column %d row %d differs across equal seeds", c, r)
			}
		}
	}
}

func TestDemoSeedChangesNoise(t *testing.T) {
	a, b := Demo(1), Demo(2)

	// clean trig columns are seed-independent
	for r := range 80 {
		if a.Y.At(r, 0) != b.Y.At(r, 0) {
			t.Fatalf("clean column 0 differs across seeds at row %d", r)
		}
	}

	// noisy and polynomial columns move with the seed
	differs := false
	for _, c := range []int{2, 3, 4, 5, 6, 7} {
		for r := range 80 {
			if a.Y.At(r, c) != b.Y.At(r, c) {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("seeded columns identical across different seeds")
	}
}

func TestDemoNoisyPolynomialSharesCoefficients(t *testing.T) {
	d := Demo(11)

	// column 6 resamples column 4's polynomial with jittered x only; at
	// worst the values differ, but both stay within the small coefficient
	// envelope on [-2, 2] with slack for the x jitter
	for _, c := range []int{4, 6} {
		for r := range 80 {
			if v := math.Abs(d.Y.At(r, c)); v > 1 {
				t.Fatalf("column %d row %d = %v, out of the small-coefficient envelope", c, r, v)
			}
		}
	}
}

func TestBuiltin(t *testing.T) {
	d, ok := Builtin(DemoName, 1)
	if !ok || d == nil {
		t.Fatalf("Builtin(%q) = (%v, %v), want dataset", DemoName, d, ok)
	}
	if _, ok := Builtin("unknown", 1); ok {
		t.Error("Builtin(unknown) reported ok")
	}

	names := BuiltinNames()
	if len(names) == 0 || names[0] != DemoName {
		t.Errorf("BuiltinNames() = %v, want [%q]", names, DemoName)
	}
}
