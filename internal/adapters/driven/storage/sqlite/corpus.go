package sqlite

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/logger"
)

var (
	_ driven.CorpusSource = (*CorpusSource)(nil)
	_ driven.CorpusWriter = (*CorpusWriter)(nil)
)

// CorpusSource loads a corpus from an existing SQLite database.
type CorpusSource struct {
	path string
}

// NewCorpusSource creates a source reading the database at path.
func NewCorpusSource(path string) *CorpusSource {
	return &CorpusSource{path: path}
}

// Load opens the database read-only, reads every document and closes it.
func (c *CorpusSource) Load(ctx context.Context) ([]domain.Document, error) {
	store, err := OpenReadOnly(c.path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	docs, err := store.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.path, err)
	}
	logger.Debug("Loaded %d documents from %s", len(docs), c.path)
	return docs, nil
}

// Name returns the database path.
func (c *CorpusSource) Name() string {
	return c.path
}

// CorpusWriter writes a corpus into a SQLite database, creating it if needed.
type CorpusWriter struct {
	path string
}

// NewCorpusWriter creates a writer for the database at path.
func NewCorpusWriter(path string) *CorpusWriter {
	return &CorpusWriter{path: path}
}

// Write replaces the documents stored at the writer's path.
func (c *CorpusWriter) Write(ctx context.Context, docs []domain.Document) error {
	store, err := NewStore(c.path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ReplaceDocuments(ctx, docs)
}

// Name returns the database path.
func (c *CorpusWriter) Name() string {
	return c.path
}
