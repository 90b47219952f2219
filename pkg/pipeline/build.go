package pipeline

import (
	"bytes"
	"strings"

	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/errors"
)

// Build produces the dataset tables for a run: a builtin dataset sampled
// at the requested shape, or a dataset JSON file read from disk. Column
// selection is applied after building.
func Build(opts Options) (*dataset.Dataset, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, err
	}

	d, err := buildDataset(opts)
	if err != nil {
		return nil, err
	}

	return selectColumns(d, opts.Columns)
}

// buildDataset resolves the dataset source and builds the full table.
func buildDataset(opts Options) (*dataset.Dataset, error) {
	if opts.DatasetPath != "" {
		return dataset.ImportJSON(opts.DatasetPath)
	}

	gens, ok := dataset.BuiltinGenerators(opts.Dataset, opts.Seed)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound,
			"unknown dataset: %q (available: %s)",
			opts.Dataset, strings.Join(dataset.BuiltinNames(), ", "))
	}

	return dataset.Build(dataset.BuildSpec{
		Name:       opts.Dataset,
		Points:     opts.Points,
		XMin:       opts.XMin,
		XMax:       opts.XMax,
		Generators: gens,
	})
}

// selectColumns narrows d to the requested columns. An empty selection
// keeps the full table.
func selectColumns(d *dataset.Dataset, cols []int) (*dataset.Dataset, error) {
	if len(cols) == 0 {
		return d, nil
	}
	return dataset.Select(d, cols)
}

// datasetJSON serializes d for hashing and caching.
func datasetJSON(d *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := dataset.WriteJSON(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
