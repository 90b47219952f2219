package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/errors"
	"github.com/matzehuels/colplot/pkg/pipeline"
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	all     bool   // render every builtin scenario
	pick    bool   // interactive scenario picker
	dir     string // output directory
	formats string // comma-separated output formats
	seed    uint64 // color, noise, and polynomial seed
	noCache bool   // bypass the artifact cache
}

// newDemoCmd creates the demo command for browsing and rendering the builtin
// scenario catalog.
func newDemoCmd() *cobra.Command {
	opts := demoOpts{dir: "."}

	cmd := &cobra.Command{
		Use:   "demo [scenario]",
		Short: "Browse and render the builtin scenario catalog",
		Long: `Demo lists the builtin scenarios, renders one by name, or renders the
whole catalog with --all. With --pick an interactive picker previews each
scenario's columns as sparklines before rendering.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case opts.all:
				return runDemoAll(ctx, cmd, &opts)
			case opts.pick:
				return runDemoPick(ctx, cmd, &opts)
			case len(args) == 1:
				return runDemoScenario(ctx, cmd, args[0], &opts, "")
			default:
				return runDemoList()
			}
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "render every builtin scenario")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "pick a scenario interactively")
	cmd.Flags().StringVar(&opts.dir, "dir", opts.dir, "output directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: svg, png, pdf, json (comma-separated)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", pipeline.DefaultSeed, "seed for colors and noisy columns")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runDemoList prints the scenario catalog as a table.
func runDemoList() error {
	scenarios := dataset.BuiltinScenarios()

	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, []string{s.Name, s.Fig, formatColumns(s.Columns), formatList(s.Styles), formatList(s.Formats)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Scenario", "Fig", "Columns", "Styles", "Formats").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleDim
		})

	fmt.Println(StyleTitle.Render("Builtin Scenarios"))
	fmt.Println(t.Render())
	printNextStep("Render one", "colplot render <scenario>")
	printNextStep("Render all", "colplot demo --all")
	printNextStep("Interactive", "colplot demo --pick")
	return nil
}

// runDemoScenario renders a single builtin scenario into the output
// directory. A non-empty figOverride replaces the scenario's layout.
func runDemoScenario(ctx context.Context, cmd *cobra.Command, name string, opts *demoOpts, figOverride string) error {
	logger := loggerFromContext(ctx)

	s, ok := dataset.BuiltinScenario(name)
	if !ok {
		return errors.New(errors.ErrCodeScenarioNotFound,
			"unknown scenario %q (run \"colplot demo\" to list scenarios)", name)
	}

	target := demoTarget(s, cmd, opts, figOverride)

	runner := newRunner(logger, opts.noCache)
	defer runner.Close()

	return renderOne(ctx, runner, target, filepath.Join(opts.dir, s.Name), false)
}

// runDemoAll renders every builtin scenario, continuing past individual
// failures so one bad render does not abort the catalog.
func runDemoAll(ctx context.Context, cmd *cobra.Command, opts *demoOpts) error {
	logger := loggerFromContext(ctx)

	runner := newRunner(logger, opts.noCache)
	defer runner.Close()

	scenarios := dataset.BuiltinScenarios()
	failed := 0
	for _, s := range scenarios {
		target := demoTarget(s, cmd, opts, "")
		if err := renderOne(ctx, runner, target, filepath.Join(opts.dir, s.Name), false); err != nil {
			printError("Failed %s: %s", s.Name, errors.UserMessage(err))
			failed++
		}
	}

	printNewline()
	if failed > 0 {
		return errors.New(errors.ErrCodeInternal,
			"%d of %d scenarios failed", failed, len(scenarios))
	}
	printInfo("Rendered %d scenarios to %s", len(scenarios), opts.dir)
	return nil
}

// runDemoPick opens the interactive scenario picker and renders the
// selection. Quitting the picker without selecting is not an error.
func runDemoPick(ctx context.Context, cmd *cobra.Command, opts *demoOpts) error {
	preview, err := pipeline.Build(pipeline.Options{Seed: opts.seed})
	if err != nil {
		return err
	}

	model := NewScenarioPickerModel(dataset.BuiltinScenarios(), preview)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("scenario picker: %w", err)
	}

	picker, ok := final.(ScenarioPickerModel)
	if !ok || picker.Selected == nil {
		return nil
	}
	return runDemoScenario(ctx, cmd, picker.Selected.Scenario.Name, opts, picker.Selected.Fig)
}

// demoTarget builds the pipeline request for one scenario, layering the
// demo command's flags on top.
func demoTarget(s dataset.Scenario, cmd *cobra.Command, opts *demoOpts, figOverride string) renderTarget {
	p := pipeline.FromScenario(s, opts.seed)
	if cmd.Flags().Changed("format") {
		p.Formats = splitList(opts.formats)
	}
	if figOverride != "" {
		p.FigType = figOverride
	}
	return renderTarget{label: s.Name, opts: p}
}

// formatColumns renders a column selection for display.
func formatColumns(cols []int) string {
	if len(cols) == 0 {
		return "all"
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// formatList renders an optional string list for display.
func formatList(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ",")
}
