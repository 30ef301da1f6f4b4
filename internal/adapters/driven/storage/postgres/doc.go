// Package postgres provides a PostgreSQL implementation of driven.SnippetStore
// built on github.com/jackc/pgx/v5.
//
// The store owns exactly one *pgx.Conn for the lifetime of the process; there is
// no pool and no reconnect. The snippets table is managed outside the program
// (see schema.sql).
//
// Search uses LIKE, which PostgreSQL evaluates case-sensitively. Catalog sorts
// with the "C" collation so ordering is bytewise regardless of the database locale.
package postgres
