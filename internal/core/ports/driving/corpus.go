package driving

import (
	"context"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
)

// CorpusService exposes the loaded document corpus.
type CorpusService interface {
	// List returns every document in corpus order.
	List(ctx context.Context) ([]domain.Document, error)

	// Get returns a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Resolve returns the document shown for a navigation path.
	// Fragments are ignored when no document matches the full path.
	Resolve(ctx context.Context, path string) (*domain.Document, error)

	// Count returns the number of documents.
	Count() int

	// Export writes the whole corpus to dst and returns the document count.
	Export(ctx context.Context, dst driven.CorpusWriter) (int, error)
}
