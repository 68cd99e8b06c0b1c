package driven

import (
	"context"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

// CorpusSource loads a document corpus from storage.
// Implementations read once; the returned slice is owned by the caller.
type CorpusSource interface {
	// Load reads every document in corpus order.
	// Malformed documents are skipped, not reported as errors.
	Load(ctx context.Context) ([]domain.Document, error)

	// Name describes the source for logs, e.g. a file path.
	Name() string
}

// CorpusStore provides read-only access to a loaded corpus.
// The corpus is immutable, so implementations are safe for concurrent reads.
type CorpusStore interface {
	// All returns every document in insertion order.
	// Callers must not modify the returned slice.
	All() []domain.Document

	// Get returns the document with the given ID.
	// Returns domain.ErrNotFound if no document has that ID.
	Get(id string) (*domain.Document, error)

	// FindByPath returns the first document whose path equals path.
	// Returns domain.ErrNotFound if no document has that path.
	FindByPath(path string) (*domain.Document, error)

	// Len returns the number of documents.
	Len() int
}

// CorpusWriter persists a corpus so a CorpusSource can load it later.
type CorpusWriter interface {
	// Write replaces the stored corpus with docs, keeping their order.
	Write(ctx context.Context, docs []domain.Document) error

	// Name describes the destination for logs, e.g. a file path.
	Name() string
}
