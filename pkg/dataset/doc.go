// Package dataset builds and serializes the paired sample tables that
// column figures are drawn from.
//
// # Overview
//
// A [Dataset] holds two equally shaped tables: column j of Y is a series
// sampled at the points in column j of X. Tables are built from
// [Generator] column sources over an evenly spaced x range:
//
//	d, err := dataset.Build(dataset.BuildSpec{
//	    Name:   "trig",
//	    Points: 100,
//	    XMin:   -2, XMax: 2,
//	    Generators: []dataset.Generator{
//	        dataset.Cosine{Freq: 4},
//	        dataset.Sine{Freq: 7},
//	    },
//	})
//
// [Demo] returns the canonical eight-column sample table: clean and noisy
// trigonometric series plus two random polynomials and their noisy
// variants. All randomness is drawn from a seeded PCG source, so the same
// seed always reproduces the same table.
//
// # Serialization
//
// Datasets round-trip through JSON ([WriteJSON] / [ReadJSON], with
// [ExportJSON] / [ImportJSON] file wrappers) as named column arrays.
// Scenario manifests ([LoadManifest]) bind datasets to figure requests in
// TOML; [BuiltinScenarios] carries the stock catalog used by the CLI and
// server.
package dataset
