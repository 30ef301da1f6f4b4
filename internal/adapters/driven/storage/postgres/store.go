package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/pattern"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snippets-cli/internal/logger"
)

// SQLSTATE codes the store reacts to.
const (
	codeUniqueViolation      = "23505"
	codeInvalidPassword      = "28P01"
	codeInvalidAuthorization = "28000"
	codeInvalidCatalogName   = "3D000"
	classConnectionException = "08"
)

// Ensure Store implements the interface.
var _ driven.SnippetStore = (*Store)(nil)

// Store is a PostgreSQL-backed snippet store over a single connection.
type Store struct {
	conn *pgx.Conn
}

// Connect opens the connection described by settings and verifies it.
// Any failure wraps domain.ErrConnection.
func Connect(ctx context.Context, settings domain.DatabaseSettings) (*Store, error) {
	logger.Debug("Connecting to PostgreSQL (%s)", RedactDSN(settings))
	return ConnectDSN(ctx, BuildDSN(settings))
}

// ConnectDSN opens a connection from a libpq keyword/value string or URL.
func ConnectDSN(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing connection string: %w", domain.ErrConnection, err)
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx) //nolint:errcheck // already failing
		return nil, fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	logger.Debug("Database connection established.")
	return &Store{conn: conn}, nil
}

// Close closes the connection.
func (s *Store) Close() error {
	return s.conn.Close(context.Background())
}

// withTx runs fn in a transaction; pgx.BeginFunc commits on success and
// rolls back on error or panic.
func (s *Store) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return classifyError(pgx.BeginFunc(ctx, s.conn, fn))
}

// Put stores or overwrites a snippet in one statement.
func (s *Store) Put(ctx context.Context, keyword, message string) (domain.Snippet, error) {
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO snippets (keyword, message)
			VALUES ($1, $2)
			ON CONFLICT (keyword) DO UPDATE SET message = EXCLUDED.message
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
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var message string
		err := tx.QueryRow(ctx, "SELECT message FROM snippets WHERE keyword = $1", keyword).Scan(&message)
		if errors.Is(err, pgx.ErrNoRows) {
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

// Catalog returns every keyword in bytewise ascending order.
func (s *Store) Catalog(ctx context.Context) ([]string, error) {
	var keywords []string
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT keyword FROM snippets ORDER BY keyword COLLATE "C"`)
		if err != nil {
			return fmt.Errorf("listing keywords: %w", err)
		}
		keywords, err = pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return fmt.Errorf("scanning keywords: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keywords, nil
}

// Search returns every snippet whose message contains fragment.
func (s *Store) Search(ctx context.Context, fragment string) ([]domain.Snippet, error) {
	var matches []domain.Snippet
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT keyword, message FROM snippets WHERE message LIKE $1 ESCAPE '"+pattern.Escape+"'",
			pattern.Contains(fragment))
		if err != nil {
			return fmt.Errorf("searching snippets: %w", err)
		}
		matches, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Snippet])
		if err != nil {
			return fmt.Errorf("scanning snippets: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// classifyError maps PostgreSQL failures onto domain errors, keeping the cause.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == codeUniqueViolation:
		return fmt.Errorf("%w: %w", domain.ErrDuplicateKey, err)
	case pgErr.Code == codeInvalidPassword,
		pgErr.Code == codeInvalidAuthorization,
		pgErr.Code == codeInvalidCatalogName,
		strings.HasPrefix(pgErr.Code, classConnectionException):
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	default:
		return err
	}
}
