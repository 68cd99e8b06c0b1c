package file

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/logger"
)

//go:embed builtin.toml
var builtinCorpus []byte

// BuiltinName is the source name of the embedded corpus.
const BuiltinName = "builtin"

var (
	_ driven.CorpusSource = (*CorpusSource)(nil)
	_ driven.CorpusWriter = (*CorpusWriter)(nil)
)

// corpusFile is the on-disk layout written by CorpusWriter.
type corpusFile struct {
	Documents []corpusEntry `toml:"documents" yaml:"documents"`
}

type corpusEntry struct {
	ID          string   `toml:"id" yaml:"id"`
	Title       string   `toml:"title" yaml:"title"`
	Description string   `toml:"description" yaml:"description"`
	Path        string   `toml:"path" yaml:"path"`
	Section     string   `toml:"section" yaml:"section"`
	Keywords    []string `toml:"keywords" yaml:"keywords"`
}

// rawCorpus is decoded leniently so one bad field does not reject the file.
type rawCorpus struct {
	Documents []map[string]any `toml:"documents" yaml:"documents"`
}

// Syntax is the encoding of a corpus file.
type Syntax int

const (
	// SyntaxTOML is a list of [[documents]] tables.
	SyntaxTOML Syntax = iota
	// SyntaxYAML is a mapping with a documents sequence.
	SyntaxYAML
)

// SyntaxOf returns the syntax implied by the extension of path.
// Anything but .yaml or .yml is read as TOML.
func SyntaxOf(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SyntaxYAML
	default:
		return SyntaxTOML
	}
}

func (s Syntax) unmarshal(data []byte, v any) error {
	if s == SyntaxYAML {
		return yaml.Unmarshal(data, v)
	}
	return toml.Unmarshal(data, v)
}

// CorpusSource loads a corpus from a TOML or YAML file.
type CorpusSource struct {
	name   string
	syntax Syntax
	read   func() ([]byte, error)
}

// NewCorpusSource creates a source reading the file at path, with the syntax
// chosen by its extension.
func NewCorpusSource(path string) *CorpusSource {
	return &CorpusSource{
		name:   path,
		syntax: SyntaxOf(path),
		read:   func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// Builtin returns the corpus embedded in the binary.
func Builtin() *CorpusSource {
	return &CorpusSource{
		name:   BuiltinName,
		syntax: SyntaxTOML,
		read:   func() ([]byte, error) { return builtinCorpus, nil },
	}
}

// Name returns the file path, or BuiltinName for the embedded corpus.
func (c *CorpusSource) Name() string {
	return c.name
}

// Load reads and decodes the corpus.
// Fields of the wrong type are treated as empty and non-string keywords are
// dropped, each with a warning; a document is only rejected by the store.
func (c *CorpusSource) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := c.read()
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	var raw rawCorpus
	if err := c.syntax.unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", c.name, err)
	}

	docs := make([]domain.Document, 0, len(raw.Documents))
	for i, entry := range raw.Documents {
		docs = append(docs, decodeDocument(i, entry))
	}

	logger.Debug("Loaded %d documents from %s", len(docs), c.name)
	return docs, nil
}

func decodeDocument(pos int, entry map[string]any) domain.Document {
	doc := domain.Document{
		ID:          stringField(pos, entry, "id"),
		Title:       stringField(pos, entry, "title"),
		Description: stringField(pos, entry, "description"),
		Path:        stringField(pos, entry, "path"),
	}

	if label := stringField(pos, entry, "section"); label != "" {
		section, err := domain.ParseSection(label)
		if err != nil {
			logger.Warn("Document %d: %v", pos, err)
		}
		doc.Section = section
	}

	switch kws := entry["keywords"].(type) {
	case nil:
	case []any:
		for _, kw := range kws {
			s, ok := kw.(string)
			if !ok {
				logger.Warn("Document %d: skipping non-string keyword %v", pos, kw)
				continue
			}
			doc.Keywords = append(doc.Keywords, s)
		}
	default:
		logger.Warn("Document %d: keywords is %T, want a list", pos, kws)
	}

	return doc
}

func stringField(pos int, entry map[string]any, key string) string {
	v, ok := entry[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		logger.Warn("Document %d: %s is %T, want a string", pos, key, v)
		return ""
	}
	return s
}

// CorpusWriter writes a corpus as a TOML or YAML file.
type CorpusWriter struct {
	path   string
	syntax Syntax
}

// NewCorpusWriter creates a writer for the file at path, with the syntax
// chosen by its extension.
func NewCorpusWriter(path string) *CorpusWriter {
	return &CorpusWriter{path: path, syntax: SyntaxOf(path)}
}

// Name returns the file path.
func (c *CorpusWriter) Name() string {
	return c.path
}

// Write encodes docs and replaces the file at the writer's path.
func (c *CorpusWriter) Write(ctx context.Context, docs []domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := corpusFile{Documents: make([]corpusEntry, 0, len(docs))}
	for i := range docs {
		doc := &docs[i]
		entry := corpusEntry{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			Path:        doc.Path,
			Keywords:    doc.Keywords,
		}
		if doc.Section.Valid() {
			entry.Section = doc.Section.Slug()
		}
		if entry.Keywords == nil {
			entry.Keywords = []string{}
		}
		out.Documents = append(out.Documents, entry)
	}

	data, err := c.encode(out)
	if err != nil {
		return fmt.Errorf("encoding corpus: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("creating corpus directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("writing corpus: %w", err)
	}
	return nil
}

func (c *CorpusWriter) encode(out corpusFile) ([]byte, error) {
	var buf bytes.Buffer
	if c.syntax == SyntaxYAML {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
