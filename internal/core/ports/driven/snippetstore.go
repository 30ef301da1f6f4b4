package driven

import (
	"context"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// SnippetStore persists snippets keyed by keyword.
// Every method runs in its own transaction that is committed or rolled
// back before the method returns.
type SnippetStore interface {
	// Put stores message under keyword, overwriting any existing message.
	// Returns the stored pair.
	Put(ctx context.Context, keyword, message string) (domain.Snippet, error)

	// Get retrieves the snippet stored under keyword.
	// A missing keyword is reported through Lookup.Found, not an error.
	Get(ctx context.Context, keyword string) (domain.Lookup, error)

	// Catalog returns every stored keyword in ascending order.
	// An empty store returns an empty slice.
	Catalog(ctx context.Context) ([]string, error)

	// Search returns every snippet whose message contains fragment.
	// Order is backend-defined. No match returns an empty slice.
	Search(ctx context.Context, fragment string) ([]domain.Snippet, error)

	// Close releases the underlying connection.
	Close() error
}
