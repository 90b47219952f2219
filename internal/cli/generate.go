package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	dataset string  // builtin dataset name
	points  int     // samples per column
	xmin    float64 // sample range start
	xmax    float64 // sample range end
	seed    uint64  // noise and polynomial seed
	output  string  // output file path (stdout if empty)
}

// newGenerateCmd creates the generate command for exporting datasets as JSON.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		dataset: pipeline.DefaultDataset,
		points:  dataset.DefaultPoints,
		xmin:    dataset.DefaultXMin,
		xmax:    dataset.DefaultXMax,
		seed:    pipeline.DefaultSeed,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset and export it as JSON",
		Long: `Generate builds a sampled x/y dataset and writes it as JSON to stdout or
a file. The exported file can be rendered later with "colplot render".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataset, "dataset", opts.dataset, "builtin dataset name")
	cmd.Flags().IntVar(&opts.points, "points", opts.points, "samples per column")
	cmd.Flags().Float64Var(&opts.xmin, "xmin", opts.xmin, "sample range start")
	cmd.Flags().Float64Var(&opts.xmax, "xmax", opts.xmax, "sample range end")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "seed for noisy and polynomial columns")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runGenerate builds the dataset and writes it to the output file or stdout.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	prog := newProgress(loggerFromContext(ctx))

	d, err := pipeline.Build(pipeline.Options{
		Dataset: opts.dataset,
		Points:  opts.points,
		XMin:    opts.xmin,
		XMax:    opts.xmax,
		Seed:    opts.seed,
	})
	if err != nil {
		return err
	}

	rows, cols := d.Dims()
	prog.done(fmt.Sprintf("Built dataset %q: %d rows, %d columns", opts.dataset, rows, cols))

	if opts.output == "" {
		return dataset.WriteJSON(d, os.Stdout)
	}

	if err := dataset.ExportJSON(d, opts.output); err != nil {
		return err
	}

	printSuccess("Generated %s", opts.output)
	printStats(rows, cols, false)
	return nil
}
