package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/colplot/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type jsonDataset struct {
	Name   string      `json:"name,omitempty"`
	Labels []string    `json:"labels,omitempty"`
	X      [][]float64 `json:"x"`
	Y      [][]float64 `json:"y"`
}

// WriteJSON encodes a dataset as JSON and writes it to w. Tables are
// stored column-wise: x[j] and y[j] are the paired series for column j.
// The output can be re-imported with [ReadJSON] for round-trip use.
func WriteJSON(d *Dataset, w io.Writer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	_, cols := d.X.Dims()
	out := jsonDataset{
		Name:   d.Name,
		Labels: d.Labels,
		X:      make([][]float64, cols),
		Y:      make([][]float64, cols),
	}
	for j := range cols {
		out.X[j] = d.XColumn(j)
		out.Y[j] = d.YColumn(j)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// ReadJSON decodes a JSON dataset from r.
//
// The input must be an object with column-wise "x" and "y" arrays of
// equal shape:
//
//	{
//	  "name": "demo",
//	  "labels": ["cos(4x)"],
//	  "x": [[-2, 0, 2]],
//	  "y": [[-0.65, 1, -0.65]]
//	}
//
// ReadJSON returns a structured error if the JSON is malformed, if the
// tables disagree in shape, or if a labels list does not match the
// column count. The returned dataset is independent of r; ReadJSON does
// not close r.
func ReadJSON(r io.Reader) (*Dataset, error) {
	var data jsonDataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode dataset")
	}

	cols := len(data.X)
	if cols == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset has no columns")
	}
	if len(data.Y) != cols {
		return nil, errors.New(errors.ErrCodeInvalidDataset,
			"%d x columns but %d y columns", cols, len(data.Y))
	}
	rows := len(data.X[0])
	if rows == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset has no rows")
	}
	for j := range cols {
		if len(data.X[j]) != rows || len(data.Y[j]) != rows {
			return nil, errors.New(errors.ErrCodeInvalidDataset,
				"column %d: ragged table (want %d rows)", j, rows)
		}
	}
	if len(data.Labels) != 0 && len(data.Labels) != cols {
		return nil, errors.New(errors.ErrCodeInvalidDataset,
			"%d labels for %d columns", len(data.Labels), cols)
	}

	x := mat.NewDense(rows, cols, nil)
	y := mat.NewDense(rows, cols, nil)
	for j := range cols {
		x.SetCol(j, data.X[j])
		y.SetCol(j, data.Y[j])
	}

	return &Dataset{Name: data.Name, X: x, Y: y, Labels: data.Labels}, nil
}

// ImportJSON reads a JSON dataset file at path.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Open failures are reported as file-not-found errors distinct
// from decode failures.
func ImportJSON(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
