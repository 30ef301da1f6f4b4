package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snippets-cli/internal/logger"
)

// Ensure SnippetService implements the interface.
var _ driving.SnippetService = (*SnippetService)(nil)

// SnippetService stores and retrieves snippets through a SnippetStore.
type SnippetService struct {
	store driven.SnippetStore
}

// NewSnippetService creates a new snippet service.
func NewSnippetService(store driven.SnippetStore) *SnippetService {
	return &SnippetService{store: store}
}

// Put stores message under keyword.
func (s *SnippetService) Put(ctx context.Context, keyword, message string) (domain.Snippet, error) {
	if s.store == nil {
		return domain.Snippet{}, domain.ErrNotImplemented
	}
	if keyword == "" {
		return domain.Snippet{}, fmt.Errorf("%w: keyword must not be empty", domain.ErrInvalidInput)
	}

	logger.Info("Storing snippet %q: %q", keyword, message)
	snippet, err := s.store.Put(ctx, keyword, message)
	if err != nil {
		logger.Error("Storing snippet %q failed: %v", keyword, err)
		return domain.Snippet{}, err
	}
	logger.Debug("Snippet stored successfully.")
	return snippet, nil
}

// Get retrieves the snippet stored under keyword.
// A miss is logged as a warning and returned as a Lookup with Found unset.
func (s *SnippetService) Get(ctx context.Context, keyword string) (domain.Lookup, error) {
	if s.store == nil {
		return domain.Lookup{}, domain.ErrNotImplemented
	}

	logger.Info("Retrieving snippet with name %q", keyword)
	lookup, err := s.store.Get(ctx, keyword)
	if err != nil {
		logger.Error("Retrieving snippet %q failed: %v", keyword, err)
		return domain.Lookup{}, err
	}

	if !lookup.Found {
		logger.Warn("%s has no snippet stored against it", keyword)
		return lookup, nil
	}
	logger.Debug("Snippet retrieved successfully.")
	return lookup, nil
}

// Catalog lists every keyword in ascending order.
func (s *SnippetService) Catalog(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Info("Retrieving catalog")
	keywords, err := s.store.Catalog(ctx)
	if err != nil {
		logger.Error("Retrieving catalog failed: %v", err)
		return nil, err
	}
	if keywords == nil {
		keywords = []string{}
	}
	logger.Debug("Catalog retrieved successfully (%d keywords).", len(keywords))
	return keywords, nil
}

// Search returns snippets whose message contains fragment.
func (s *SnippetService) Search(ctx context.Context, fragment string) ([]domain.Snippet, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Info("Retrieving snippets with fragment %q", fragment)
	matches, err := s.store.Search(ctx, fragment)
	if err != nil {
		logger.Error("Searching for %q failed: %v", fragment, err)
		return nil, err
	}
	if len(matches) == 0 {
		logger.Warn("No snippets found containing %q", fragment)
		return []domain.Snippet{}, nil
	}
	logger.Debug("Snippets retrieved successfully (%d matches).", len(matches))
	return matches, nil
}
