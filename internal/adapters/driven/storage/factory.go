// Package storage provides factory functions for choosing corpus adapters by file type.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/logger"
)

// Format is a corpus file format.
type Format string

// Supported corpus formats.
const (
	FormatTOML   Format = "toml"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// FormatOf returns the corpus format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q (want .toml, .yaml, .yml, .db, .sqlite or .sqlite3)", domain.ErrUnsupportedCorpus, path)
	}
}

// NewCorpusSource returns the loader for path.
// An empty path selects the corpus embedded in the binary.
func NewCorpusSource(path string) (driven.CorpusSource, error) {
	if path == "" {
		return file.Builtin(), nil
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSQLite:
		return sqlite.NewCorpusSource(path), nil
	default:
		return file.NewCorpusSource(path), nil
	}
}

// NewCorpusWriter returns the writer for path.
func NewCorpusWriter(path string) (driven.CorpusWriter, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSQLite:
		return sqlite.NewCorpusWriter(path), nil
	default:
		return file.NewCorpusWriter(path), nil
	}
}

// LoadCorpus reads source into an in-memory store.
// Returns domain.ErrEmptyCorpus when no usable document remains.
func LoadCorpus(ctx context.Context, source driven.CorpusSource) (*memory.CorpusStore, error) {
	logger.Section("Load corpus")
	logger.Debug("Source: %s", source.Name())

	docs, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	store := memory.NewCorpusStore(docs)
	if store.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", source.Name(), domain.ErrEmptyCorpus)
	}

	if skipped := len(docs) - store.Len(); skipped > 0 {
		logger.Warn("Skipped %d of %d documents from %s", skipped, len(docs), source.Name())
	}
	logger.Info("Corpus: %d documents from %s", store.Len(), source.Name())
	return store, nil
}
