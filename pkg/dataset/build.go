package dataset

import (
	"math/rand/v2"

	"github.com/aclements/go-moremath/vec"
	"github.com/matzehuels/colplot/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultPoints is the sample count used when a spec leaves it zero.
	DefaultPoints = 80
	// DefaultXMin and DefaultXMax bound the default sample range.
	DefaultXMin = -2.0
	DefaultXMax = 2.0
)

// BuildSpec describes a dataset to build. Zero values for Points and the
// x range fall back to the defaults; Generators must be non-empty.
type BuildSpec struct {
	Name       string
	Points     int
	XMin, XMax float64
	Generators []Generator
}

// Build samples every generator over an evenly spaced x range and
// returns the resulting table pair. Each column of x holds the same
// linspace; column j of y is Generators[j] applied to it.
func Build(spec BuildSpec) (*Dataset, error) {
	if spec.Points == 0 {
		spec.Points = DefaultPoints
	}
	if spec.XMin == 0 && spec.XMax == 0 {
		spec.XMin, spec.XMax = DefaultXMin, DefaultXMax
	}
	if spec.Points < 2 {
		return nil, errors.New(errors.ErrCodeInvalidDataset,
			"dataset %q: need at least 2 points, got %d", spec.Name, spec.Points)
	}
	if spec.XMin >= spec.XMax {
		return nil, errors.New(errors.ErrCodeInvalidDataset,
			"dataset %q: empty x range [%g, %g]", spec.Name, spec.XMin, spec.XMax)
	}
	if len(spec.Generators) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset,
			"dataset %q has no generators", spec.Name)
	}

	xs := Linspace(spec.XMin, spec.XMax, spec.Points)
	cols := len(spec.Generators)
	x := mat.NewDense(spec.Points, cols, nil)
	y := mat.NewDense(spec.Points, cols, nil)
	labels := make([]string, cols)

	for j, gen := range spec.Generators {
		x.SetCol(j, xs)
		y.SetCol(j, vec.Map(gen.Eval, xs))
		labels[j] = gen.Name()
	}

	return &Dataset{Name: spec.Name, X: x, Y: y, Labels: labels}, nil
}

// DemoName is the builtin name of the [Demo] dataset.
const DemoName = "demo"

// DemoGenerators returns the eight stock column sources: cos(4x) and
// sin(7x), their noisy variants, a random degree-2 and a random degree-5
// polynomial, and noisy resamplings of both polynomials. The trigonometric
// noise perturbs both the sample point and the value; the polynomial noise
// perturbs the sample point only. All randomness comes from a PCG source
// seeded with seed, so equal seeds give equal columns.
func DemoGenerators(seed uint64) []Generator {
	rng := rand.New(rand.NewPCG(seed, seed+1))

	cos := Cosine{Freq: 4}
	sin := Sine{Freq: 7}
	poly2 := RandomPolynomial(rng, 2, 0.02)
	poly5 := RandomPolynomial(rng, 5, 0.005)

	return []Generator{
		cos,
		sin,
		NewNoisy(cos, 0.1, 0.1, rng),
		NewNoisy(sin, 0.02, 0.02, rng),
		poly2,
		poly5,
		NewNoisy(poly2, 0.1, 0, rng),
		NewNoisy(poly5, 0.02, 0, rng),
	}
}

// Demo samples [DemoGenerators] over the default 80-point range [-2, 2].
func Demo(seed uint64) *Dataset {
	d, err := Build(BuildSpec{Name: DemoName, Generators: DemoGenerators(seed)})
	if err != nil {
		panic(err)
	}
	return d
}

// BuiltinGenerators returns the column sources for the named stock
// dataset, or false for unknown names.
func BuiltinGenerators(name string, seed uint64) ([]Generator, bool) {
	switch name {
	case DemoName:
		return DemoGenerators(seed), true
	}
	return nil, false
}

// Builtin returns the named stock dataset at its default shape, or false
// for unknown names.
func Builtin(name string, seed uint64) (*Dataset, bool) {
	gens, ok := BuiltinGenerators(name, seed)
	if !ok {
		return nil, false
	}
	d, err := Build(BuildSpec{Name: name, Generators: gens})
	if err != nil {
		panic(err)
	}
	return d, true
}

// BuiltinNames lists the stock dataset names.
func BuiltinNames() []string {
	return []string{DemoName}
}
