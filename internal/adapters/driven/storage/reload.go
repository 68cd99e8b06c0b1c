package storage

import (
	"context"
	"sync"

	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/logger"
)

// Ensure ReloadingStore implements the interface.
var _ driven.CorpusStore = (*ReloadingStore)(nil)

// ReloadingStore is a CorpusStore whose contents can be swapped for a fresh
// load of its source. Each swap replaces the whole corpus; readers see
// either the old or the new one, never a mix.
type ReloadingStore struct {
	mu      sync.RWMutex
	source  driven.CorpusSource
	current *memory.CorpusStore
}

// NewReloadingStore loads source and wraps the result.
func NewReloadingStore(ctx context.Context, source driven.CorpusSource) (*ReloadingStore, error) {
	store, err := LoadCorpus(ctx, source)
	if err != nil {
		return nil, err
	}
	return &ReloadingStore{source: source, current: store}, nil
}

// Source returns the source the store reloads from.
func (s *ReloadingStore) Source() driven.CorpusSource {
	return s.source
}

// Reload reads the source again. On failure the previous corpus stays in place.
func (s *ReloadingStore) Reload(ctx context.Context) error {
	store, err := LoadCorpus(ctx, s.source)
	if err != nil {
		logger.Warn("Reload of %s failed, keeping %d documents: %v", s.source.Name(), s.Len(), err)
		return err
	}

	s.mu.Lock()
	s.current = store
	s.mu.Unlock()
	return nil
}

// All returns every document in insertion order.
func (s *ReloadingStore) All() []domain.Document {
	return s.store().All()
}

// Get retrieves a document by ID.
func (s *ReloadingStore) Get(id string) (*domain.Document, error) {
	return s.store().Get(id)
}

// FindByPath retrieves the first document with the given path.
func (s *ReloadingStore) FindByPath(path string) (*domain.Document, error) {
	return s.store().FindByPath(path)
}

// Len returns the number of documents.
func (s *ReloadingStore) Len() int {
	return s.store().Len()
}

func (s *ReloadingStore) store() *memory.CorpusStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
