// Package pkg provides the core libraries for colplot column plotting.
//
// # Overview
//
// Colplot renders the columns of a pair of x/y tables as line and scatter
// figures, either overlaid on one shared surface or stacked as one subplot
// per column. The pkg directory is organized into three main areas:
//
//  1. Domain logic ([dataset], [plot], [plot/sink])
//  2. Orchestration ([pipeline])
//  3. Infrastructure ([cache], [gallery], [server], [errors], [observability])
//
// # Architecture
//
// The typical data flow through colplot:
//
//	Generator spec / JSON dataset
//	         ↓
//	    [dataset] package (build + select columns)
//	         ↓
//	    [plot] package (compose figure)
//	         ↓
//	    [plot/sink] package (encode artifacts)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Build a dataset and render a figure:
//
//	import (
//	    "github.com/matzehuels/colplot/pkg/dataset"
//	    "github.com/matzehuels/colplot/pkg/plot"
//	    "github.com/matzehuels/colplot/pkg/plot/sink"
//	)
//
//	// 1. Build the demo dataset and keep two columns
//	d, _ := dataset.Select(dataset.Demo(42), []int{0, 2})
//
//	// 2. Compose a shared-surface figure
//	styles, _ := plot.ParseStyles([]string{"line", "scatter"})
//	fig, _ := plot.Columns(plot.FigSingle, d.X, d.Y, styles)
//
//	// 3. Encode to SVG
//	svg, _ := sink.RenderSVG(fig)
//
// Or run the cached pipeline end to end:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, _ := runner.Execute(ctx, pipeline.Options{
//	    Columns: []int{0, 2},
//	    Styles:  []string{"line", "scatter"},
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// ## Domain Logic
//
// [dataset] - Dataset construction and manipulation. Seeded generators for
// the demo dataset, JSON import and export, column selection, and the TOML
// scenario manifest with its builtin catalog.
//
// [plot] - Figure composition on gonum/plot. One trace per column, shared or
// stacked surfaces, a seeded color palette, and the ten-glyph marker palette.
//
// [plot/sink] - Artifact encoders for the supported output formats: SVG,
// PNG, PDF, and the JSON figure description.
//
// ## Orchestration
//
// [pipeline] - The build → compose → render pipeline used by CLI and server.
// The Runner caches built datasets and rendered artifacts; the free functions
// Build, Compose, and Render run single stages uncached.
//
// ## Infrastructure
//
// [cache] - Cache backends: NullCache (caching disabled), FileCache (CLI
// default, XDG cache dir), RedisCache (shared server deployments). Keys are
// prefix:sha256 of everything that affects the cached stage.
//
// [gallery] - Figure gallery persistence with memory and MongoDB stores.
//
// [server] - HTTP preview server on chi: render API, gallery CRUD, and the
// HTML gallery pages.
//
// [errors] - Structured errors with machine-readable codes, shared by CLI
// and server.
//
// [observability] - Optional hooks for pipeline, cache, and server events.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Common Workflows
//
// Load a scenario manifest and render every scenario:
//
//	m, _ := dataset.LoadManifest("figures.toml")
//	for _, s := range m.Scenarios {
//	    res, _ := runner.Execute(ctx, pipeline.FromScenario(s, m.Seed))
//	    // write res.Artifacts
//	}
//
// Export a dataset for later reuse:
//
//	d, _ := pipeline.Build(pipeline.Options{Points: 200, Seed: 7})
//	_ = dataset.ExportJSON(d, "demo.json")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dataset/...  # Specific package
//	go test -run Example       # Examples only
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/dataset
// [plot]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/plot
// [plot/sink]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/plot/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/cache
// [gallery]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/gallery
// [server]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/colplot/pkg/buildinfo
package pkg
