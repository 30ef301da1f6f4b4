// Package messages defines Bubbletea message types for the snippet browser.
package messages

import (
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewList shows the catalog or the latest search results.
	ViewList ViewType = iota
	// ViewSnippet shows a single snippet.
	ViewSnippet
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewSnippet:
		return "snippet"
	default:
		return "unknown"
	}
}

// CatalogLoaded carries every stored keyword.
type CatalogLoaded struct {
	Keywords []string
	Err      error
}

// SearchCompleted carries the snippets matching Query.
type SearchCompleted struct {
	Query   string
	Results []domain.Snippet
	Err     error
}

// SnippetLoaded carries the result of opening one keyword.
type SnippetLoaded struct {
	Lookup domain.Lookup
	Err    error
}
