package store

import (
	"fmt"
	"sync"

	"github.com/handiism/bulktag/internal/model"
)

// MemStore is an in-memory TagStore used by tests and dry runs.
//
// Records are copied on the way in and out, matching the ownership
// rules of the real store. Individual paths can be primed to fail on
// load or save so batch error handling can be exercised without
// touching the file system.
type MemStore struct {
	mu       sync.Mutex
	records  map[string]model.Record
	failLoad map[string]bool
	failSave map[string]bool

	// Saves counts successful Save calls, for assertions.
	Saves int
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		records:  make(map[string]model.Record),
		failLoad: make(map[string]bool),
		failSave: make(map[string]bool),
	}
}

// Put seeds the store with a record for path.
func (s *MemStore) Put(path string, record model.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[path] = record.Clone()
}

// FailLoad makes Load return an error for path.
func (s *MemStore) FailLoad(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLoad[path] = true
}

// FailSave makes Save return an error for path.
func (s *MemStore) FailSave(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSave[path] = true
}

// Load implements TagStore.
func (s *MemStore) Load(path string) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failLoad[path] {
		return nil, fmt.Errorf("load %s: primed failure", path)
	}
	record, ok := s.records[path]
	if !ok {
		return nil, fmt.Errorf("load %s: no such item", path)
	}
	return record.Clone(), nil
}

// Save implements TagStore.
func (s *MemStore) Save(path string, record model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave[path] {
		return fmt.Errorf("save %s: primed failure", path)
	}
	s.records[path] = record.Clone()
	s.Saves++
	return nil
}

// Get returns the stored record for path, or nil when absent.
func (s *MemStore) Get(path string) model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[path]
	if !ok {
		return nil
	}
	return record.Clone()
}
