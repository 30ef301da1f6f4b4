package driving

import (
	"context"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// SnippetService stores, retrieves, lists and searches snippets.
type SnippetService interface {
	// Put stores message under keyword, overwriting any previous message.
	Put(ctx context.Context, keyword, message string) (domain.Snippet, error)

	// Get retrieves the snippet stored under keyword.
	// Check Lookup.Found to tell a miss from an empty message.
	Get(ctx context.Context, keyword string) (domain.Lookup, error)

	// Catalog lists every keyword in ascending order.
	Catalog(ctx context.Context) ([]string, error)

	// Search returns snippets whose message contains fragment.
	// No match is an empty slice.
	Search(ctx context.Context, fragment string) ([]domain.Snippet, error)
}
