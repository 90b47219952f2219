package dataset

import (
	"github.com/aclements/go-moremath/vec"
	"github.com/matzehuels/colplot/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset is a pair of equally shaped tables: column j of Y holds a
// series sampled at the points in column j of X. Labels, when present,
// name the columns in order.
type Dataset struct {
	Name   string
	X, Y   *mat.Dense
	Labels []string
}

// Dims returns the table shape.
func (d *Dataset) Dims() (rows, cols int) {
	return d.X.Dims()
}

// Validate checks that the tables exist, agree in shape, and match the
// label count when labels are present.
func (d *Dataset) Validate() error {
	if d.X == nil || d.Y == nil {
		return errors.New(errors.ErrCodeInvalidDataset, "dataset %q has no tables", d.Name)
	}
	xr, xc := d.X.Dims()
	yr, yc := d.Y.Dims()
	if xr != yr || xc != yc {
		return errors.New(errors.ErrCodeInvalidDataset,
			"dataset %q: x is %dx%d but y is %dx%d", d.Name, xr, xc, yr, yc)
	}
	if xc == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "dataset %q has no columns", d.Name)
	}
	if len(d.Labels) != 0 && len(d.Labels) != xc {
		return errors.New(errors.ErrCodeInvalidDataset,
			"dataset %q: %d labels for %d columns", d.Name, len(d.Labels), xc)
	}
	return nil
}

// XColumn returns a copy of column j of the x table.
func (d *Dataset) XColumn(j int) []float64 {
	rows, _ := d.X.Dims()
	out := make([]float64, rows)
	mat.Col(out, j, d.X)
	return out
}

// YColumn returns a copy of column j of the y table.
func (d *Dataset) YColumn(j int) []float64 {
	rows, _ := d.Y.Dims()
	out := make([]float64, rows)
	mat.Col(out, j, d.Y)
	return out
}

// Label returns the name of column j, or an empty string when the
// dataset carries no labels.
func (d *Dataset) Label(j int) string {
	if j < 0 || j >= len(d.Labels) {
		return ""
	}
	return d.Labels[j]
}

// Linspace returns n evenly spaced samples over [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	return vec.Linspace(lo, hi, n)
}

// Select returns a new dataset holding the given columns in the given
// order. Columns may repeat. Selecting out of range is an error.
func Select(d *Dataset, cols []int) (*Dataset, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset is nil")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no columns selected")
	}

	rows, k := d.X.Dims()
	x := mat.NewDense(rows, len(cols), nil)
	y := mat.NewDense(rows, len(cols), nil)
	var labels []string
	if len(d.Labels) > 0 {
		labels = make([]string, len(cols))
	}

	for j, c := range cols {
		if c < 0 || c >= k {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %d out of range (dataset %q has %d columns)", c, d.Name, k)
		}
		x.SetCol(j, d.XColumn(c))
		y.SetCol(j, d.YColumn(c))
		if labels != nil {
			labels[j] = d.Labels[c]
		}
	}

	return &Dataset{Name: d.Name, X: x, Y: y, Labels: labels}, nil
}
