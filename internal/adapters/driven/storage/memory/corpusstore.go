package memory

import (
	"strings"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/logger"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an immutable in-memory implementation of driven.CorpusStore.
// It needs no locking because nothing is written after construction.
type CorpusStore struct {
	documents []domain.Document
	byID      map[string]int
	byPath    map[string]int
}

// NewCorpusStore creates a store holding a private copy of docs.
// Documents without an ID, and later documents repeating an earlier ID,
// are skipped with a warning.
func NewCorpusStore(docs []domain.Document) *CorpusStore {
	s := &CorpusStore{
		documents: make([]domain.Document, 0, len(docs)),
		byID:      make(map[string]int, len(docs)),
		byPath:    make(map[string]int, len(docs)),
	}

	for i := range docs {
		doc := docs[i]
		doc.ID = strings.TrimSpace(doc.ID)
		if doc.ID == "" {
			logger.Warn("Skipping document at position %d: missing id", i)
			continue
		}
		if _, dup := s.byID[doc.ID]; dup {
			logger.Warn("Skipping document at position %d: %v %q", i, domain.ErrDuplicateID, doc.ID)
			continue
		}

		if doc.Keywords != nil {
			doc.Keywords = append([]string(nil), doc.Keywords...)
		}

		idx := len(s.documents)
		s.documents = append(s.documents, doc)
		s.byID[doc.ID] = idx
		if _, seen := s.byPath[doc.Path]; !seen && doc.Path != "" {
			s.byPath[doc.Path] = idx
		}
	}

	return s
}

// All returns every document in insertion order.
func (s *CorpusStore) All() []domain.Document {
	return s.documents
}

// Get retrieves a document by ID.
func (s *CorpusStore) Get(id string) (*domain.Document, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := s.documents[idx]
	return &doc, nil
}

// FindByPath retrieves the first document with the given path.
func (s *CorpusStore) FindByPath(path string) (*domain.Document, error) {
	idx, ok := s.byPath[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := s.documents[idx]
	return &doc, nil
}

// Len returns the number of documents.
func (s *CorpusStore) Len() int {
	return len(s.documents)
}
