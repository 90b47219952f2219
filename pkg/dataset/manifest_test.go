package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/colplot/pkg/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
title = "coursework demo"
seed = 42

[[scenario]]
name = "trig-single"
fig = "single"
dataset = "demo"
columns = [0, 1]
styles = ["line", "scatter"]
formats = ["png", "svg"]

[[scenario]]
name = "all-stack"
fig = "subplots"
dataset = "demo"
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if m.Title != "coursework demo" || m.Seed != 42 {
		t.Errorf("header = (%q, %d), want (coursework demo, 42)", m.Title, m.Seed)
	}
	if len(m.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, want 2", len(m.Scenarios))
	}

	s, ok := m.Scenario("trig-single")
	if !ok {
		t.Fatal("Scenario(trig-single) not found")
	}
	if s.Fig != "single" || len(s.Columns) != 2 || len(s.Formats) != 2 {
		t.Errorf("scenario = %+v, want single layout with 2 columns and 2 formats", s)
	}

	if _, ok := m.Scenario("absent"); ok {
		t.Error("Scenario(absent) reported ok")
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty manifest",
			content: `title = "nothing"`,
		},
		{
			name: "bad fig type",
			content: `
[[scenario]]
name = "bad"
fig = "grid"
`,
		},
		{
			name: "bad style",
			content: `
[[scenario]]
name = "bad"
fig = "single"
styles = ["bars"]
`,
		},
		{
			name: "bad name",
			content: `
[[scenario]]
name = "../escape"
fig = "single"
`,
		},
		{
			name: "negative column",
			content: `
[[scenario]]
name = "bad"
fig = "single"
columns = [-1]
`,
		},
		{
			name: "style count mismatch",
			content: `
[[scenario]]
name = "bad"
fig = "single"
columns = [0, 1]
styles = ["line"]
`,
		},
		{
			name: "duplicate names",
			content: `
[[scenario]]
name = "twin"
fig = "single"

[[scenario]]
name = "twin"
fig = "subplots"
`,
		},
		{
			name: "unknown key",
			content: `
[[scenario]]
name = "typo"
fig = "single"
stiles = ["line"]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			if _, err := LoadManifest(path); err == nil {
				t.Error("LoadManifest() error = nil, want validation error")
			}
		})
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.toml"))
	if errors.GetCode(err) != errors.ErrCodeInvalidManifest {
		t.Errorf("GetCode(err) = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidManifest)
	}
}

func TestBuiltinScenarios(t *testing.T) {
	scenarios := BuiltinScenarios()
	if len(scenarios) == 0 {
		t.Fatal("BuiltinScenarios() is empty")
	}

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("scenario %q invalid: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true

		if s.Dataset != DemoName {
			t.Errorf("scenario %q dataset = %q, want %q", s.Name, s.Dataset, DemoName)
		}
		for _, c := range s.Columns {
			if c < 0 || c >= 8 {
				t.Errorf("scenario %q selects column %d outside the demo table", s.Name, c)
			}
		}
	}

	if _, ok := BuiltinScenario("all-subplots"); !ok {
		t.Error("BuiltinScenario(all-subplots) not found")
	}
	if _, ok := BuiltinScenario("absent"); ok {
		t.Error("BuiltinScenario(absent) reported ok")
	}
}
