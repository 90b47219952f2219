package pipeline

import (
	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/errors"
	"github.com/matzehuels/colplot/pkg/plot"
)

// Compose assembles the figure surfaces and traces for a dataset.
// Styles default to lines for every column when none are given.
func Compose(d *dataset.Dataset, opts Options) (*plot.Figure, error) {
	if err := opts.ValidateForCompose(); err != nil {
		return nil, err
	}
	if d == nil || d.X == nil || d.Y == nil {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset tables must be non-nil")
	}

	figType, err := plot.ParseFigType(opts.FigType)
	if err != nil {
		return nil, err
	}

	styles, err := composeStyles(d, opts)
	if err != nil {
		return nil, err
	}

	figOpts := []plot.Option{
		plot.WithSize(opts.WidthIn, opts.HeightIn),
		plot.WithSeed(opts.Seed),
	}
	if opts.Title != "" {
		figOpts = append(figOpts, plot.WithTitle(opts.Title))
	}

	return plot.Columns(figType, d.X, d.Y, styles, figOpts...)
}

// composeStyles resolves the per-column style tags for d.
func composeStyles(d *dataset.Dataset, opts Options) ([]plot.Style, error) {
	if len(opts.Styles) == 0 {
		_, cols := d.Dims()
		styles := make([]plot.Style, cols)
		for i := range styles {
			styles[i] = plot.StyleLine
		}
		return styles, nil
	}
	return plot.ParseStyles(opts.Styles)
}
