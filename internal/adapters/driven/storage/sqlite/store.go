package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/logger"
)

// migrations are applied in order; the slice index plus one is the schema version.
var migrations = []string{
	`CREATE TABLE documents (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		title       TEXT,
		description TEXT,
		path        TEXT,
		section     TEXT,
		keywords    TEXT
	);
	CREATE INDEX idx_documents_position ON documents(position);
	CREATE INDEX idx_documents_path ON documents(path);`,
}

// Store is a SQLite database holding one document corpus.
type Store struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// NewStore opens or creates a writable corpus database at path and brings
// its schema up to date.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenReadOnly opens an existing corpus database without write access.
// Unlike NewStore it never creates the file.
func OpenReadOnly(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("corpus database: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db, path: path, readOnly: true}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	for i, stmt := range migrations {
		version := i + 1
		if version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %d: %w", version, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
	}

	return nil
}

// Documents returns every stored document in corpus order.
// Rows with a missing ID are skipped; unreadable sections and keywords are
// dropped from the document with a warning.
func (s *Store) Documents(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, path, section, keywords
		FROM documents ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		doc, ok, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		if ok {
			docs = append(docs, doc)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// ReplaceDocuments swaps the stored corpus for docs in one transaction.
func (s *Store) ReplaceDocuments(ctx context.Context, docs []domain.Document) error {
	if s.readOnly {
		return fmt.Errorf("%w: %s is opened read-only", domain.ErrInvalidInput, s.path)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, position, title, description, path, section, keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range docs {
		doc := &docs[i]
		keywords := doc.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		keywordsJSON, err := json.Marshal(keywords)
		if err != nil {
			return fmt.Errorf("marshalling keywords for %s: %w", doc.ID, err)
		}

		if _, err := stmt.ExecContext(ctx, doc.ID, i, doc.Title, doc.Description,
			doc.Path, doc.Section.Slug(), string(keywordsJSON)); err != nil {
			return fmt.Errorf("inserting document %s: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing documents: %w", err)
	}
	return nil
}

// scanDocument scans one documents row. It reports false for rows that
// cannot form a document.
func scanDocument(rows *sql.Rows) (domain.Document, bool, error) {
	var id, title, description, path, section, keywords sql.NullString
	if err := rows.Scan(&id, &title, &description, &path, &section, &keywords); err != nil {
		return domain.Document{}, false, fmt.Errorf("scanning document: %w", err)
	}
	if !id.Valid || id.String == "" {
		logger.Warn("Skipping document row without id")
		return domain.Document{}, false, nil
	}

	doc := domain.Document{
		ID:          id.String,
		Title:       title.String,
		Description: description.String,
		Path:        path.String,
	}

	if section.Valid && section.String != "" && section.String != domain.SectionUnknown.Slug() {
		parsed, err := domain.ParseSection(section.String)
		if err != nil {
			logger.Warn("Document %s: %v", doc.ID, err)
		}
		doc.Section = parsed
	}

	if keywords.Valid && keywords.String != "" {
		if err := json.Unmarshal([]byte(keywords.String), &doc.Keywords); err != nil {
			logger.Warn("Document %s: unreadable keywords: %v", doc.ID, err)
			doc.Keywords = nil
		}
		if len(doc.Keywords) == 0 {
			doc.Keywords = nil
		}
	}

	return doc, true, nil
}
