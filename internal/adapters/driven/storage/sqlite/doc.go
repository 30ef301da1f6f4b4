// Package sqlite provides a SQLite-based implementation of driven.SnippetStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. The store holds a single connection for
// the lifetime of the process.
//
// # Schema
//
// The snippets table is created by versioned migrations embedded from the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.snippets/data/snippets.db
//
// # Search Semantics
//
// Search uses LIKE, which SQLite evaluates case-insensitively for ASCII letters.
package sqlite
