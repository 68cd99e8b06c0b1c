// Package sqlite stores document corpora in SQLite databases.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It provides:
//
//   - CorpusSource: read-only corpus loading (driven.CorpusSource)
//   - CorpusWriter: corpus export (driven.CorpusWriter)
//
// # Schema
//
// A single documents table holds one row per document. Keywords are stored as a
// JSON array of strings and sections by slug (e.g. "api_reference"). The schema is
// versioned through a schema_migrations table.
//
// # Thread Safety
//
// A Store may be shared between goroutines. Loaders open the database with
// query_only set, so a corpus in use is never modified by docfind.
package sqlite
