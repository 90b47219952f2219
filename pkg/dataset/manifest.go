package dataset

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/matzehuels/colplot/pkg/errors"
	"github.com/matzehuels/colplot/pkg/plot"
)

// Scenario binds a dataset to one figure request. Formats are carried
// as-is and validated by the pipeline, which owns the format list.
type Scenario struct {
	// Name identifies the scenario to the CLI, TUI, and server.
	Name string `toml:"name" json:"name"`
	// Fig is the figure layout tag, "single" or "subplots".
	Fig string `toml:"fig" json:"fig"`
	// Dataset is a builtin dataset name or a dataset JSON path. Empty
	// means the demo dataset.
	Dataset string `toml:"dataset" json:"dataset,omitempty"`
	// Columns optionally selects dataset columns in order; empty means
	// all columns.
	Columns []int `toml:"columns" json:"columns,omitempty"`
	// Styles holds one trace style tag per plotted column; empty means
	// lines everywhere.
	Styles []string `toml:"styles" json:"styles,omitempty"`
	// Formats lists the artifact formats to render; empty means the
	// pipeline default.
	Formats []string `toml:"formats" json:"formats,omitempty"`
	// Title optionally overrides the shared-surface headline.
	Title string `toml:"title" json:"title,omitempty"`
}

// Validate checks the scenario's name, layout, styles, and column
// selection. Formats are not checked here. Names must satisfy the slug
// grammar because render jobs splice them into artifact file names.
func (s *Scenario) Validate() error {
	if err := errors.ValidateScenarioSlug(s.Name); err != nil {
		return err
	}
	if _, err := plot.ParseFigType(s.Fig); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "scenario %q", s.Name)
	}
	if _, err := plot.ParseStyles(s.Styles); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "scenario %q", s.Name)
	}
	for _, c := range s.Columns {
		if c < 0 {
			return errors.New(errors.ErrCodeInvalidManifest,
				"scenario %q: negative column %d", s.Name, c)
		}
	}
	if len(s.Columns) > 0 && len(s.Styles) > 0 && len(s.Columns) != len(s.Styles) {
		return errors.New(errors.ErrCodeInvalidManifest,
			"scenario %q: %d styles for %d selected columns", s.Name, len(s.Styles), len(s.Columns))
	}
	return nil
}

// Manifest is a TOML scenario collection:
//
//	title = "coursework demo"
//	seed  = 42
//
//	[[scenario]]
//	name    = "trig-single"
//	fig     = "single"
//	dataset = "demo"
//	columns = [0, 1]
//	styles  = ["line", "scatter"]
//	formats = ["png", "svg"]
type Manifest struct {
	Title string `toml:"title"`
	// Seed overrides the default color and noise seed for every
	// scenario in the manifest; zero keeps the default.
	Seed      uint64     `toml:"seed"`
	Scenarios []Scenario `toml:"scenario"`
}

// Validate checks every scenario and rejects duplicate names.
func (m *Manifest) Validate() error {
	if len(m.Scenarios) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest has no scenarios")
	}
	seen := make(map[string]bool, len(m.Scenarios))
	for i := range m.Scenarios {
		s := &m.Scenarios[i]
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return errors.New(errors.ErrCodeInvalidManifest,
				"duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Scenario returns the named scenario from the manifest.
func (m *Manifest) Scenario(name string) (Scenario, bool) {
	for _, s := range m.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// LoadManifest reads and validates a TOML manifest at path. Unknown keys
// are an error, so typos in scenario blocks surface instead of silently
// dropping fields.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// BuiltinScenarios returns the stock catalog over the demo dataset:
// everything at once in both layouts, all-line and all-scatter variants,
// each clean series overlaid with its noisy twin, and the single-column
// cases.
func BuiltinScenarios() []Scenario {
	mixed := []string{"line", "line", "scatter", "scatter", "line", "line", "scatter", "scatter"}
	pair := []string{"line", "scatter"}
	return []Scenario{
		{Name: "all-single", Fig: "single", Dataset: DemoName, Styles: mixed},
		{Name: "all-subplots", Fig: "subplots", Dataset: DemoName, Styles: mixed},
		{Name: "all-lines", Fig: "subplots", Dataset: DemoName, Styles: repeatTag("line", 8)},
		{Name: "all-scatter", Fig: "single", Dataset: DemoName, Styles: repeatTag("scatter", 8)},
		{Name: "cos-pair", Fig: "single", Dataset: DemoName, Columns: []int{0, 2}, Styles: pair},
		{Name: "sin-pair", Fig: "single", Dataset: DemoName, Columns: []int{1, 3}, Styles: pair},
		{Name: "poly2-pair", Fig: "single", Dataset: DemoName, Columns: []int{4, 6}, Styles: pair},
		{Name: "poly5-pair", Fig: "single", Dataset: DemoName, Columns: []int{5, 7}, Styles: pair},
		{Name: "cos-pair-subplots", Fig: "subplots", Dataset: DemoName, Columns: []int{0, 2}, Styles: pair},
		{Name: "sin-line", Fig: "single", Dataset: DemoName, Columns: []int{3}, Styles: []string{"line"}},
		{Name: "sin-scatter", Fig: "subplots", Dataset: DemoName, Columns: []int{3}, Styles: []string{"scatter"}},
	}
}

// BuiltinScenario looks up name in the stock catalog.
func BuiltinScenario(name string) (Scenario, bool) {
	for _, s := range BuiltinScenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func repeatTag(tag string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = tag
	}
	return out
}
