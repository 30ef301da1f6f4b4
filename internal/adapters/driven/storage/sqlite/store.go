package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/pattern"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snippets-cli/internal/logger"
)

// dbFile is the database file name inside the data directory.
const dbFile = "snippets.db"

// Ensure Store implements the interface.
var _ driven.SnippetStore = (*Store)(nil)

// Store is a SQLite-backed snippet store holding a single connection.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the snippet database in dataDir.
// If dataDir is empty, defaults to ~/.snippets/data/snippets.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".snippets", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	logger.Debug("Opening SQLite database at %s", dbPath)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", domain.ErrConnection, err)
	}

	// One long-lived connection, no pooling.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("Database connection established.")
	return s, nil
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
func (s *Store) migrate(fsys fs.FS) error {
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

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_snippets.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		logger.Debug("Applied migration %s", name)
	}

	return nil
}

// withTx runs fn in a transaction that is always released.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", classifyError(err))
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return classifyError(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", classifyError(err))
	}
	return nil
}

// Put stores or overwrites a snippet in one statement.
func (s *Store) Put(ctx context.Context, keyword, message string) (domain.Snippet, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO snippets (keyword, message)
			VALUES (?, ?)
			ON CONFLICT(keyword) DO UPDATE SET message = excluded.message
		`, keyword, message)
		if err != nil {
			return fmt.Errorf("storing snippet: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Snippet{}, err
	}
	return domain.Snippet{Keyword: keyword, Message: message}, nil
}

// Get retrieves a snippet by keyword.
func (s *Store) Get(ctx context.Context, keyword string) (domain.Lookup, error) {
	result := domain.Missing(keyword)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var message string
		err := tx.QueryRowContext(ctx, "SELECT message FROM snippets WHERE keyword = ?", keyword).Scan(&message)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("retrieving snippet: %w", err)
		}
		result = domain.Found(domain.Snippet{Keyword: keyword, Message: message})
		return nil
	})
	if err != nil {
		return domain.Lookup{}, err
	}
	return result, nil
}

// Catalog returns every keyword in ascending order.
func (s *Store) Catalog(ctx context.Context) ([]string, error) {
	keywords := make([]string, 0)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT keyword FROM snippets ORDER BY keyword")
		if err != nil {
			return fmt.Errorf("listing keywords: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var k string
			if err := rows.Scan(&k); err != nil {
				return fmt.Errorf("scanning keyword: %w", err)
			}
			keywords = append(keywords, k)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return keywords, nil
}

// Search returns every snippet whose message contains fragment.
func (s *Store) Search(ctx context.Context, fragment string) ([]domain.Snippet, error) {
	matches := make([]domain.Snippet, 0)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			"SELECT keyword, message FROM snippets WHERE message LIKE ? ESCAPE '"+pattern.Escape+"'",
			pattern.Contains(fragment))
		if err != nil {
			return fmt.Errorf("searching snippets: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var sn domain.Snippet
			if err := rows.Scan(&sn.Keyword, &sn.Message); err != nil {
				return fmt.Errorf("scanning snippet: %w", err)
			}
			matches = append(matches, sn)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// classifyError maps SQLite result codes onto domain errors, keeping the cause.
func classifyError(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %w", domain.ErrDuplicateKey, err)
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	default:
		return err
	}
}
