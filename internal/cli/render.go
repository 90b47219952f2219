package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/errors"
	"github.com/matzehuels/colplot/pkg/pipeline"
	"github.com/matzehuels/colplot/pkg/plot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file (single format) or base path (multiple)
	fig     string  // figure layout: "single" or "subplots"
	styles  string  // comma-separated trace styles
	columns string  // comma-separated column indices
	formats string  // comma-separated output formats
	title   string  // shared-surface headline
	width   float64 // canvas width in inches
	height  float64 // height per surface in inches
	points  int     // samples per column for builtin datasets
	seed    uint64  // color, noise, and polynomial seed
	noCache bool    // bypass the artifact cache
}

// newRenderCmd creates the render command. The target argument is a builtin
// scenario name, a TOML manifest, or an exported dataset JSON file.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scenario|manifest.toml|dataset.json]",
		Short: "Render column figures as SVG, PNG, PDF, or JSON",
		Long: `Render composes figures from table columns and writes them as image or
JSON artifacts.

The target is one of:
  - a builtin scenario name (run "colplot demo" to list them)
  - a TOML manifest describing one or more scenarios
  - a dataset JSON file exported with "colplot generate"

Flags set explicitly on the command line override the corresponding
scenario or manifest values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVar(&opts.fig, "fig", "", `figure layout: "single" or "subplots"`)
	cmd.Flags().StringVar(&opts.styles, "style", "", "trace style per column: line, scatter (comma-separated)")
	cmd.Flags().StringVar(&opts.columns, "columns", "", "column indices to plot (comma-separated, default all)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: svg, png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "shared-surface headline")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "height per surface in inches")
	cmd.Flags().IntVar(&opts.points, "points", 0, "samples per column for builtin datasets")
	cmd.Flags().Uint64Var(&opts.seed, "seed", pipeline.DefaultSeed, "seed for colors and noisy columns")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// splitList parses a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitInts parses a comma-separated list of column indices.
func splitInts(s string) ([]int, error) {
	var out []int
	for _, p := range splitList(s) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid column index %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}

// renderTarget is one resolved figure request with a display label.
type renderTarget struct {
	label string
	opts  pipeline.Options
}

// resolveTarget maps the command argument to one or more pipeline requests.
// A TOML manifest yields one target per scenario, a dataset JSON file yields
// a single file-backed target, and anything else must name a builtin
// scenario. With seedExplicit the flag seed wins over the manifest seed.
func resolveTarget(target string, seed uint64, seedExplicit bool) ([]renderTarget, error) {
	switch {
	case strings.HasSuffix(target, ".toml"):
		m, err := dataset.LoadManifest(target)
		if err != nil {
			return nil, err
		}
		effective := seed
		if m.Seed != 0 && !seedExplicit {
			effective = m.Seed
		}
		targets := make([]renderTarget, 0, len(m.Scenarios))
		for _, s := range m.Scenarios {
			targets = append(targets, renderTarget{
				label: s.Name,
				opts:  pipeline.FromScenario(s, effective),
			})
		}
		return targets, nil

	case strings.HasSuffix(target, ".json"):
		label := strings.TrimSuffix(filepath.Base(target), ".json")
		return []renderTarget{{
			label: label,
			opts:  pipeline.Options{DatasetPath: target, Seed: seed},
		}}, nil

	default:
		s, ok := dataset.BuiltinScenario(target)
		if !ok {
			return nil, errors.New(errors.ErrCodeScenarioNotFound,
				"unknown scenario %q (run \"colplot demo\" to list scenarios)", target)
		}
		return []renderTarget{{label: s.Name, opts: pipeline.FromScenario(s, seed)}}, nil
	}
}

// applyOverrides layers explicitly set command-line flags over a resolved
// request, so scenario and manifest values survive unless overridden.
func applyOverrides(p *pipeline.Options, cmd *cobra.Command, opts *renderOpts) error {
	flags := cmd.Flags()

	if flags.Changed("fig") {
		p.FigType = opts.fig
	}
	if flags.Changed("style") {
		p.Styles = splitList(opts.styles)
	}
	if flags.Changed("columns") {
		cols, err := splitInts(opts.columns)
		if err != nil {
			return err
		}
		p.Columns = cols
	}
	if flags.Changed("format") {
		p.Formats = splitList(opts.formats)
	}
	if flags.Changed("title") {
		p.Title = opts.title
	}
	if flags.Changed("width") {
		p.WidthIn = opts.width
	}
	if flags.Changed("height") {
		p.HeightIn = opts.height
	}
	if flags.Changed("points") {
		p.Points = opts.points
	}
	return nil
}

// outputBase derives the base output path. An explicit --output wins, with a
// known format extension stripped so "-o fig.svg --format svg,png" writes
// fig.svg and fig.png. Otherwise the target argument is used, minus any
// manifest or dataset extension.
func outputBase(output, target string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	return strings.TrimSuffix(target, filepath.Ext(target))
}

// runRender resolves the target, applies flag overrides, and renders every
// resolved request.
func runRender(ctx context.Context, cmd *cobra.Command, target string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	flags := cmd.Flags()

	targets, err := resolveTarget(target, opts.seed, flags.Changed("seed"))
	if err != nil {
		return err
	}

	for i := range targets {
		if err := applyOverrides(&targets[i].opts, cmd, opts); err != nil {
			return err
		}
	}

	if flags.Changed("title") {
		for _, tgt := range targets {
			if tgt.opts.FigType == string(plot.FigSubplots) {
				printWarning("--title has no effect on subplot figures")
				break
			}
		}
	}

	runner := newRunner(logger, opts.noCache)
	defer runner.Close()

	base := outputBase(opts.output, target)
	multi := len(targets) > 1
	for _, tgt := range targets {
		if err := renderOne(ctx, runner, tgt, base, multi); err != nil {
			return err
		}
	}
	return nil
}

// renderOne executes one request and writes every rendered format. With
// multiple targets the label is appended to the base path, so a manifest
// "figures.toml" with a "cos-pair" scenario writes figures_cos-pair.svg.
func renderOne(ctx context.Context, runner *pipeline.Runner, tgt renderTarget, base string, multi bool) error {
	logger := loggerFromContext(ctx)

	opts := tgt.opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(logger)
	sp := newSpinner(ctx, fmt.Sprintf("Rendering %s...", tgt.label))
	sp.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		sp.Stop()
		return err
	}
	sp.StopWithSuccess("Rendered %s", tgt.label)

	printStats(result.Stats.Rows, result.Stats.Columns, result.CacheInfo.RenderHit)

	for _, format := range opts.Formats {
		path := base + "." + format
		if multi {
			path = fmt.Sprintf("%s_%s.%s", base, tgt.label, format)
		}
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %s: %d artifacts", tgt.label, len(result.Artifacts)))
	return nil
}

// writeArtifact validates the output path and writes one artifact file.
func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
