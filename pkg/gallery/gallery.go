// Package gallery persists metadata about rendered figures.
//
// The server stores one Record per successful render so figures can be
// listed, inspected, and re-rendered later. Records hold the originating
// pipeline request rather than artifact bytes; artifacts are reproducible
// from the request and served through the render cache.
//
// # Architecture
//
//	Record      - metadata snapshot of one pipeline run
//	Store       - storage interface (Put/Get/List/Delete)
//	MemoryStore - in-process map store for tests and single runs
//	MongoStore  - MongoDB-backed store for server deployments
//
// # Usage
//
//	store := gallery.NewMemoryStore()
//	defer store.Close()
//
//	rec := gallery.NewRecord("demo overlay", opts, result)
//	if err := store.Put(ctx, rec); err != nil {
//		// Handle storage error
//	}
package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/colplot/pkg/pipeline"
)

// Record describes one rendered figure stored in the gallery.
//
// The originating request is kept in full so the figure can be rebuilt on
// demand. Artifact bytes live in the render cache, keyed by the dataset
// hash, and are not duplicated here.
type Record struct {
	ID          string           `json:"id" bson:"_id"`
	Name        string           `json:"name" bson:"name"`
	Request     pipeline.Options `json:"request" bson:"request"`
	DatasetHash string           `json:"dataset_hash,omitempty" bson:"dataset_hash,omitempty"`
	Rows        int              `json:"rows" bson:"rows"`
	Columns     int              `json:"columns" bson:"columns"`
	Surfaces    int              `json:"surfaces" bson:"surfaces"`
	Formats     []string         `json:"formats" bson:"formats"`
	CreatedAt   time.Time        `json:"created_at" bson:"created_at"`
}

// NewRecord summarizes a completed pipeline run into a gallery record.
// The ID is a fresh UUID and CreatedAt is the current time. An empty name
// falls back to the dataset name or path.
func NewRecord(name string, opts pipeline.Options, result *pipeline.Result) *Record {
	if name == "" {
		name = opts.Dataset
	}
	if name == "" {
		name = opts.DatasetPath
	}
	opts.Logger = nil // runtime-only, never stored

	return &Record{
		ID:          uuid.NewString(),
		Name:        name,
		Request:     opts,
		DatasetHash: result.DatasetHash,
		Rows:        result.Stats.Rows,
		Columns:     result.Stats.Columns,
		Surfaces:    result.Stats.Surfaces,
		Formats:     opts.Formats,
		CreatedAt:   time.Now().UTC(),
	}
}

// Store is the interface for gallery persistence backends.
type Store interface {
	// Put saves a record, replacing any existing record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID.
	// Returns a FIGURE_NOT_FOUND error if no record has that ID.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record by ID.
	// Returns a FIGURE_NOT_FOUND error if no record has that ID.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
