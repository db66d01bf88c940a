package catalog

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// StorageKey is the versioned key holding the serialized catalog. Any
// value under it that fails to parse as a non-empty array is discarded in
// favor of the seed; there is no migration logic.
const StorageKey = "cacaoloom.catalog.v1"

// Backend is the narrow persistence capability the store needs: a single
// key in some durable key-value space. Implementations must tolerate
// concurrent callers; the last write wins.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Store owns the in-memory catalog and mirrors every mutation back to the
// backend. The in-memory list stays correct even when persistence fails.
type Store struct {
	mu      sync.RWMutex
	items   []Product
	backend Backend
	log     *zap.Logger
}

// NewStore loads the catalog from the backend, seeding defaults when the
// persisted value is absent, empty, or corrupt. Read failures are
// swallowed: a storefront with the seed catalog beats an error page.
func NewStore(backend Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{backend: backend, log: log}
	s.items = s.load()
	return s
}

func (s *Store) load() []Product {
	raw, err := s.backend.Get(StorageKey)
	if err != nil {
		s.log.Warn("catalog read failed, using seed", zap.Error(err))
		return Seed()
	}
	if len(raw) == 0 {
		return Seed()
	}
	var items []Product
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		if err != nil {
			s.log.Warn("persisted catalog unparseable, using seed", zap.Error(err))
		}
		return Seed()
	}
	return items
}

// Products returns a copy of the current catalog in display order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Add validates the candidate and prepends the resulting product. A blank
// name aborts without mutating or persisting anything.
func (s *Store) Add(c Candidate) (Product, error) {
	p, err := NewProduct(c)
	if err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	s.items = append([]Product{p}, s.items...)
	s.persistLocked()
	s.mu.Unlock()
	return p, nil
}

// Remove deletes the product with the given id. Unknown ids are a no-op;
// the caller's confirmation step happens before Remove is reached.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// persistLocked serializes the full list to the backend. Failures are
// logged, never surfaced: the catalog remains usable from memory.
func (s *Store) persistLocked() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("catalog marshal failed", zap.Error(err))
		return
	}
	if err := s.backend.Put(StorageKey, raw); err != nil {
		s.log.Error("catalog persist failed", zap.Error(err))
	}
}
