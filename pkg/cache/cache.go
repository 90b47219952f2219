// Package cache provides content-addressed caching for pipeline results.
//
// Two stages of the figure pipeline are cached:
//   - Built datasets (JSON), keyed by generator spec and seed. Datasets carry
//     seeded noise, so caching keeps re-renders byte-identical across runs.
//   - Rendered artifacts (PNG/SVG/PDF/JSON bytes), keyed by dataset hash and
//     the full figure request.
//
// # Backends
//
//   - NullCache: caching disabled
//   - FileCache: entry-per-file under a directory, CLI default (XDG cache dir)
//   - RedisCache: shared cache for multi-instance server deployments
//
// All backends implement the Cache interface and are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get returns the cached data for key. The second return reports whether
	// the key was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs for the cached pipeline stages.
const (
	// DefaultDatasetTTL is how long built datasets stay cached.
	DefaultDatasetTTL = 30 * 24 * time.Hour

	// DefaultArtifactTTL is how long rendered artifacts stay cached.
	DefaultArtifactTTL = 7 * 24 * time.Hour
)

// DatasetKeyOpts captures everything that affects a built dataset.
type DatasetKeyOpts struct {
	Points int
	XMin   float64
	XMax   float64
	Seed   uint64
}

// ArtifactKeyOpts captures everything that affects a rendered artifact.
type ArtifactKeyOpts struct {
	Format        string
	FigType       string
	Styles        []string
	Columns       []int
	Title         string
	WidthIn       float64
	HeightPerAxIn float64
	DPI           int
	Seed          uint64
}

// Keyer derives cache keys for the cached pipeline stages.
type Keyer interface {
	// DatasetKey generates a key for a built dataset.
	DatasetKey(name string, opts DatasetKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives keys by hashing the dataset name / hash together with
// the option struct. Keys look like "dataset:<sha256>" / "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for a built dataset.
func (k *DefaultKeyer) DatasetKey(name string, opts DatasetKeyOpts) string {
	return hashKey("dataset", name, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", datasetHash, opts)
}
