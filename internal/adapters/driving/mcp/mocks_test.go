package mcp

import (
	"context"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// mockSnippetService is a mock implementation of driving.SnippetService.
type mockSnippetService struct {
	stored   domain.Snippet
	lookup   domain.Lookup
	keywords []string
	results  []domain.Snippet
	err      error

	// last records the most recent arguments.
	lastKeyword  string
	lastMessage  string
	lastFragment string
}

func (m *mockSnippetService) Put(_ context.Context, keyword, message string) (domain.Snippet, error) {
	m.lastKeyword, m.lastMessage = keyword, message
	if m.err != nil {
		return domain.Snippet{}, m.err
	}
	return domain.Snippet{Keyword: keyword, Message: message}, nil
}

func (m *mockSnippetService) Get(_ context.Context, keyword string) (domain.Lookup, error) {
	m.lastKeyword = keyword
	return m.lookup, m.err
}

func (m *mockSnippetService) Catalog(_ context.Context) ([]string, error) {
	return m.keywords, m.err
}

func (m *mockSnippetService) Search(_ context.Context, fragment string) ([]domain.Snippet, error) {
	m.lastFragment = fragment
	return m.results, m.err
}
