package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/colplot/pkg/cache"
	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/observability"
	"github.com/matzehuels/colplot/pkg/plot"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → compose → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	obs := observability.Pipeline()
	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	datasetLabel := opts.Dataset
	if datasetLabel == "" {
		datasetLabel = opts.DatasetPath
	}

	// Stage 1: Build
	buildStart := time.Now()
	obs.OnBuildStart(ctx, datasetLabel)
	d, datasetHit, err := r.BuildWithCacheInfo(ctx, opts)
	if err != nil {
		obs.OnBuildComplete(ctx, datasetLabel, 0, 0, time.Since(buildStart), err)
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Dataset = d
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Rows, result.Stats.Columns = d.Dims()
	result.CacheInfo.DatasetHit = datasetHit
	obs.OnBuildComplete(ctx, d.Name, result.Stats.Rows, result.Stats.Columns, result.Stats.BuildTime, nil)

	// File datasets carry their own name; let it flow into the artifacts.
	if opts.Dataset == "" {
		opts.Dataset = d.Name
	}

	// Compute dataset hash for cache keys and API responses
	if data, err := datasetJSON(d); err == nil {
		result.DatasetHash = cache.Hash(data)
	}

	r.Logger.Info("built dataset",
		"dataset", d.Name,
		"rows", result.Stats.Rows,
		"columns", result.Stats.Columns,
		"duration", result.Stats.BuildTime)

	// Stage 2: Compose
	composeStart := time.Now()
	obs.OnComposeStart(ctx, opts.FigType, result.Stats.Columns)
	fig, err := r.Compose(ctx, d, opts)
	if err != nil {
		obs.OnComposeComplete(ctx, opts.FigType, time.Since(composeStart), err)
		return nil, fmt.Errorf("compose: %w", err)
	}
	result.Figure = fig
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.Surfaces = len(fig.Surfaces)
	obs.OnComposeComplete(ctx, opts.FigType, result.Stats.ComposeTime, nil)

	r.Logger.Info("composed figure",
		"fig", opts.FigType,
		"surfaces", result.Stats.Surfaces,
		"duration", result.Stats.ComposeTime)

	// Stage 3: Render
	renderStart := time.Now()
	obs.OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, fig, result.DatasetHash, opts)
	if err != nil {
		obs.OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	obs.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildWithCacheInfo builds the dataset with caching and returns cache hit info.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, opts Options) (*dataset.Dataset, bool, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// File datasets are read straight from disk and never cached.
	if opts.DatasetPath != "" {
		d, err := buildDataset(opts)
		if err != nil {
			return nil, false, err
		}
		selected, err := selectColumns(d, opts.Columns)
		return selected, false, err
	}

	// Compute cache key
	cacheKey := r.Keyer.DatasetKey(opts.Dataset, opts.DatasetKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil {
			observability.Cache().OnCacheError(ctx, "dataset", err)
		} else if hit {
			if d, err := dataset.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "dataset")
				selected, err := selectColumns(d, opts.Columns)
				if err != nil {
					return nil, false, err
				}
				return selected, true, nil // Cache hit
			}
			// If deserialization fails, fall through to rebuild
		}
		observability.Cache().OnCacheMiss(ctx, "dataset")
	}

	// Build
	d, err := buildDataset(opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the full table before column selection
	if !opts.Refresh {
		if data, err := datasetJSON(d); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultDatasetTTL); err != nil {
				observability.Cache().OnCacheError(ctx, "dataset", err)
			} else {
				observability.Cache().OnCacheSet(ctx, "dataset", len(data))
			}
		}
	}

	selected, err := selectColumns(d, opts.Columns)
	return selected, false, err // Cache miss
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and discards the cache hit info.
func (r *Runner) Build(ctx context.Context, opts Options) (*dataset.Dataset, error) {
	d, _, err := r.BuildWithCacheInfo(ctx, opts)
	return d, err
}

// Compose assembles the figure for a dataset. Figures hold live plot
// state and are never cached, so this simply validates and delegates.
func (r *Runner) Compose(ctx context.Context, d *dataset.Dataset, opts Options) (*plot.Figure, error) {
	if err := opts.ValidateForCompose(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	return Compose(d, opts)
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// datasetHash keys the artifacts to the tables being plotted; an empty
// hash disables artifact caching.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, fig *plot.Figure, datasetHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if datasetHash == "" {
		artifacts, err := Render(fig, opts)
		return artifacts, false, err
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(datasetHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil {
			observability.Cache().OnCacheError(ctx, "artifact", err)
		}
		if err != nil || !hit {
			allCached = false
			break
		}
		artifacts[format] = data
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := Render(fig, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(datasetHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultArtifactTTL); err != nil {
			observability.Cache().OnCacheError(ctx, "artifact", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, fig *plot.Figure, datasetHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, fig, datasetHash, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
