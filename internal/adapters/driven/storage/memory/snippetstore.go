package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
)

// Ensure SnippetStore implements the interface.
var _ driven.SnippetStore = (*SnippetStore)(nil)

// SnippetStore is an in-memory implementation of driven.SnippetStore.
// Search is case-sensitive and returns matches in keyword order.
type SnippetStore struct {
	mu       sync.RWMutex
	snippets map[string]string
	closed   bool
}

// NewSnippetStore creates a new in-memory snippet store.
func NewSnippetStore() *SnippetStore {
	return &SnippetStore{
		snippets: make(map[string]string),
	}
}

// Put stores or overwrites a snippet.
func (s *SnippetStore) Put(_ context.Context, keyword, message string) (domain.Snippet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.Snippet{}, domain.ErrConnection
	}
	s.snippets[keyword] = message
	return domain.Snippet{Keyword: keyword, Message: message}, nil
}

// Get retrieves a snippet by keyword.
func (s *SnippetStore) Get(_ context.Context, keyword string) (domain.Lookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.Lookup{}, domain.ErrConnection
	}
	msg, ok := s.snippets[keyword]
	if !ok {
		return domain.Missing(keyword), nil
	}
	return domain.Found(domain.Snippet{Keyword: keyword, Message: msg}), nil
}

// Catalog returns all keywords in ascending order.
func (s *SnippetStore) Catalog(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrConnection
	}
	return s.sortedKeys(), nil
}

// Search returns snippets whose message contains fragment.
func (s *SnippetStore) Search(_ context.Context, fragment string) ([]domain.Snippet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrConnection
	}
	result := make([]domain.Snippet, 0)
	for _, k := range s.sortedKeys() {
		if strings.Contains(s.snippets[k], fragment) {
			result = append(result, domain.Snippet{Keyword: k, Message: s.snippets[k]})
		}
	}
	return result, nil
}

// Close marks the store closed. Later calls fail with domain.ErrConnection.
func (s *SnippetStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len returns the number of stored snippets.
func (s *SnippetStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snippets)
}

// sortedKeys returns keys in ascending order (caller must hold lock).
func (s *SnippetStore) sortedKeys() []string {
	keys := make([]string, 0, len(s.snippets))
	for k := range s.snippets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
