package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
	"github.com/custodia-labs/docfind/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService exposes the loaded corpus to driving adapters.
type CorpusService struct {
	store driven.CorpusStore
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(store driven.CorpusStore) *CorpusService {
	return &CorpusService{store: store}
}

// List returns every document in corpus order.
func (s *CorpusService) List(_ context.Context) ([]domain.Document, error) {
	all := s.store.All()
	out := make([]domain.Document, len(all))
	copy(out, all)
	return out, nil
}

// Get returns a document by ID.
func (s *CorpusService) Get(_ context.Context, id string) (*domain.Document, error) {
	doc, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	return doc, nil
}

// Resolve returns the document shown for a navigation path.
// "/models#song" resolves to its own document when one exists,
// otherwise to the page at "/models".
func (s *CorpusService) Resolve(_ context.Context, path string) (*domain.Document, error) {
	doc, err := s.store.FindByPath(path)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	page, _, found := strings.Cut(path, "#")
	if !found {
		return nil, fmt.Errorf("resolve %s: %w", path, domain.ErrNotFound)
	}
	doc, err = s.store.FindByPath(page)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return doc, nil
}

// Count returns the number of documents.
func (s *CorpusService) Count() int {
	return s.store.Len()
}

// Export writes the whole corpus to dst and returns the document count.
func (s *CorpusService) Export(ctx context.Context, dst driven.CorpusWriter) (int, error) {
	if dst == nil {
		return 0, fmt.Errorf("%w: export destination is required", domain.ErrInvalidInput)
	}

	docs := s.store.All()
	if len(docs) == 0 {
		return 0, domain.ErrEmptyCorpus
	}
	if err := dst.Write(ctx, docs); err != nil {
		return 0, fmt.Errorf("export to %s: %w", dst.Name(), err)
	}

	logger.Info("Exported %d documents to %s", len(docs), dst.Name())
	return len(docs), nil
}
