// Package pipeline provides the core figure pipeline for colplot.
//
// This package implements the complete build → compose → render pipeline that
// can be used by CLI, API, and TUI components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Sample generator columns or load dataset tables from a file
//  2. Compose: Assemble the figure surfaces and traces from the tables
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Dataset: "demo",
//	    FigType: "subplots",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Build only
//	d, err := runner.Build(ctx, opts)
//
//	// Compose with existing tables
//	fig, err := runner.Compose(ctx, d, opts)
//
//	// Render with existing figure
//	artifacts, err := runner.Render(ctx, fig, hash, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/colplot/pkg/cache"
	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/errors"
	"github.com/matzehuels/colplot/pkg/plot"
	"github.com/matzehuels/colplot/pkg/plot/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultDataset is the builtin dataset plotted when none is named.
	DefaultDataset = dataset.DemoName

	// DefaultFigType is the default figure layout.
	DefaultFigType = string(plot.FigSingle)

	// DefaultWidthIn is the default canvas width in inches.
	DefaultWidthIn = plot.DefaultWidthIn

	// DefaultHeightIn is the default height per surface in inches.
	DefaultHeightIn = plot.DefaultHeightIn

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = plot.DefaultSeed

	// DefaultDPI is the default PNG resolution.
	DefaultDPI = sink.DefaultDPI
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the figure pipeline.
// This struct supports JSON serialization for API requests and BSON
// serialization for gallery storage.
type Options struct {
	// Build options
	Dataset     string  `json:"dataset,omitempty" bson:"dataset,omitempty"`
	DatasetPath string  `json:"dataset_path,omitempty" bson:"dataset_path,omitempty"` // dataset JSON file, alternative to Dataset
	Columns     []int   `json:"columns,omitempty" bson:"columns,omitempty"`           // column selection (empty = all columns)
	Points      int     `json:"points,omitempty" bson:"points,omitempty"`             // samples per column for builtin datasets
	XMin        float64 `json:"x_min,omitempty" bson:"x_min,omitempty"`
	XMax        float64 `json:"x_max,omitempty" bson:"x_max,omitempty"`
	Seed        uint64  `json:"seed,omitempty" bson:"seed,omitempty"`
	Refresh     bool    `json:"refresh,omitempty" bson:"refresh,omitempty"`

	// Compose options
	FigType  string   `json:"fig_type,omitempty" bson:"fig_type,omitempty"`
	Styles   []string `json:"styles,omitempty" bson:"styles,omitempty"` // per-column trace styles (empty = all lines)
	Title    string   `json:"title,omitempty" bson:"title,omitempty"`
	WidthIn  float64  `json:"width_in,omitempty" bson:"width_in,omitempty"`
	HeightIn float64  `json:"height_in,omitempty" bson:"height_in,omitempty"` // height per surface, not total

	// Render options
	Formats []string `json:"formats,omitempty" bson:"formats,omitempty"`
	DPI     int      `json:"dpi,omitempty" bson:"dpi,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" bson:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-" bson:"-"`
}

// FromScenario converts a manifest scenario into pipeline options.
// A scenario dataset ending in ".json" is treated as a file path.
func FromScenario(s dataset.Scenario, seed uint64) Options {
	opts := Options{
		Columns: s.Columns,
		FigType: s.Fig,
		Styles:  s.Styles,
		Title:   s.Title,
		Formats: s.Formats,
		Seed:    seed,
	}
	if strings.HasSuffix(s.Dataset, ".json") {
		opts.DatasetPath = s.Dataset
	} else {
		opts.Dataset = s.Dataset
	}
	return opts
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the built or loaded table pair.
	Dataset *dataset.Dataset

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Figure is the composed figure.
	Figure *plot.Figure

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows        int
	Columns     int
	Surfaces    int
	BuildTime   time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage. Compose has no
// entry: figures hold live plot state and are never serialized.
type CacheInfo struct {
	DatasetHit bool // Whether the dataset came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	o.SetComposeDefaults()
	o.SetRenderDefaults()
	o.validated = true
	return nil
}

// ValidateForBuild checks required fields for dataset building.
func (o *Options) ValidateForBuild() error {
	if o.Dataset != "" && o.DatasetPath != "" {
		return errors.New(errors.ErrCodeInvalidInput,
			"dataset %q and dataset path %q are mutually exclusive", o.Dataset, o.DatasetPath)
	}
	if o.Dataset == "" && o.DatasetPath == "" {
		o.Dataset = DefaultDataset
	}
	for _, c := range o.Columns {
		if c < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "negative column index: %d", c)
		}
	}

	// Build defaults. Canonicalizing the sample shape here keeps cache
	// keys identical for equivalent requests.
	if o.Points == 0 {
		o.Points = dataset.DefaultPoints
	}
	if o.XMin == 0 && o.XMax == 0 {
		o.XMin, o.XMax = dataset.DefaultXMin, dataset.DefaultXMax
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetComposeDefaults sets default values for figure composition.
func (o *Options) SetComposeDefaults() {
	if o.FigType == "" {
		o.FigType = DefaultFigType
	}
	if o.WidthIn == 0 {
		o.WidthIn = DefaultWidthIn
	}
	if o.HeightIn == 0 {
		o.HeightIn = DefaultHeightIn
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForCompose validates and sets defaults for figure composition.
func (o *Options) ValidateForCompose() error {
	o.SetComposeDefaults()
	if _, err := plot.ParseFigType(o.FigType); err != nil {
		return err
	}
	if _, err := plot.ParseStyles(o.Styles); err != nil {
		return err
	}
	if o.WidthIn < 0 || o.HeightIn < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"negative figure size: %g x %g inches", o.WidthIn, o.HeightIn)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.DPI < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "negative DPI: %d", o.DPI)
	}
	return ValidateFormats(o.Formats)
}

// DatasetKeyOpts returns cache key options for dataset building.
func (o *Options) DatasetKeyOpts() cache.DatasetKeyOpts {
	return cache.DatasetKeyOpts{
		Points: o.Points,
		XMin:   o.XMin,
		XMax:   o.XMax,
		Seed:   o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:        format,
		FigType:       o.FigType,
		Styles:        o.Styles,
		Columns:       o.Columns,
		Title:         o.Title,
		WidthIn:       o.WidthIn,
		HeightPerAxIn: o.HeightIn,
		DPI:           o.DPI,
		Seed:          o.Seed,
	}
}
