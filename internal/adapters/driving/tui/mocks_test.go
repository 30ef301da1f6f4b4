package tui

import (
	"context"
	"sort"
	"strings"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// mockSnippetService is a map-backed driving.SnippetService.
type mockSnippetService struct {
	data map[string]string
	err  error
}

func newMockSnippetService(data map[string]string) *mockSnippetService {
	return &mockSnippetService{data: data}
}

func (m *mockSnippetService) Put(_ context.Context, keyword, message string) (domain.Snippet, error) {
	if m.err != nil {
		return domain.Snippet{}, m.err
	}
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[keyword] = message
	return domain.Snippet{Keyword: keyword, Message: message}, nil
}

func (m *mockSnippetService) Get(_ context.Context, keyword string) (domain.Lookup, error) {
	if m.err != nil {
		return domain.Lookup{}, m.err
	}
	msg, ok := m.data[keyword]
	if !ok {
		return domain.Missing(keyword), nil
	}
	return domain.Found(domain.Snippet{Keyword: keyword, Message: msg}), nil
}

func (m *mockSnippetService) Catalog(context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *mockSnippetService) Search(_ context.Context, fragment string) ([]domain.Snippet, error) {
	if m.err != nil {
		return nil, m.err
	}
	keys, _ := m.Catalog(context.Background())
	out := []domain.Snippet{}
	for _, k := range keys {
		if strings.Contains(m.data[k], fragment) {
			out = append(out, domain.Snippet{Keyword: k, Message: m.data[k]})
		}
	}
	return out, nil
}
