package gallery

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/colplot/pkg/errors"
)

// MemoryStore is an in-process gallery store backed by a map.
// It is safe for concurrent use and suited to tests and single-process runs.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Put saves a record, replacing any existing record with the same ID.
func (s *MemoryStore) Put(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "record must have an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy so later mutation of the caller's record is invisible.
	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

// Get retrieves a record by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeFigureNotFound, "figure %q not found", id)
	}

	cp := *rec
	return &cp, nil
}

// List returns all records, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		cp := *rec
		recs = append(recs, &cp)
	}

	slices.SortFunc(recs, func(a, b *Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return recs, nil
}

// Delete removes a record by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return errors.New(errors.ErrCodeFigureNotFound, "figure %q not found", id)
	}
	delete(s.records, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
