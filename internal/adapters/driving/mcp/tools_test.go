package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

func newTestServer(t *testing.T, svc *mockSnippetService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Snippets: svc})
	require.NoError(t, err)
	return server
}

func TestServer_handlePut(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and echoes the pair", func(t *testing.T) {
		svc := &mockSnippetService{}
		server := newTestServer(t, svc)

		_, out, err := server.handlePut(ctx, nil, PutInput{Keyword: "hello", Message: "world"})

		require.NoError(t, err)
		assert.Equal(t, SnippetOutput{Keyword: "hello", Message: "world"}, out)
		assert.Equal(t, "hello", svc.lastKeyword)
		assert.Equal(t, "world", svc.lastMessage)
	})

	t.Run("rejects empty keyword", func(t *testing.T) {
		svc := &mockSnippetService{}
		server := newTestServer(t, svc)

		_, _, err := server.handlePut(ctx, nil, PutInput{Message: "world"})

		assert.ErrorIs(t, err, ErrEmptyKeyword)
		assert.Empty(t, svc.lastMessage)
	})

	t.Run("propagates service error", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{err: errors.New("database error")})

		_, _, err := server.handlePut(ctx, nil, PutInput{Keyword: "k", Message: "v"})

		assert.EqualError(t, err, "database error")
	})
}

func TestServer_handleGet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{
			lookup: domain.Found(domain.Snippet{Keyword: "hello", Message: "world"}),
		})

		_, out, err := server.handleGet(ctx, nil, KeywordInput{Keyword: "hello"})

		require.NoError(t, err)
		assert.Equal(t, GetOutput{Keyword: "hello", Message: "world", Found: true}, out)
	})

	t.Run("missing reports N/A", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{lookup: domain.Missing("ghost")})

		_, out, err := server.handleGet(ctx, nil, KeywordInput{Keyword: "ghost"})

		require.NoError(t, err)
		assert.Equal(t, GetOutput{Keyword: "ghost", Message: "N/A", Found: false}, out)
	})

	t.Run("rejects empty keyword", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{})

		_, _, err := server.handleGet(ctx, nil, KeywordInput{})

		assert.ErrorIs(t, err, ErrEmptyKeyword)
	})
}

func TestServer_handleCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("lists keywords", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{keywords: []string{"a", "b"}})

		_, out, err := server.handleCatalog(ctx, nil, struct{}{})

		require.NoError(t, err)
		assert.Equal(t, CatalogOutput{Keywords: []string{"a", "b"}, Count: 2}, out)
	})

	t.Run("empty catalog is an empty list", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{})

		_, out, err := server.handleCatalog(ctx, nil, struct{}{})

		require.NoError(t, err)
		assert.NotNil(t, out.Keywords)
		assert.Equal(t, 0, out.Count)
	})
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matches", func(t *testing.T) {
		svc := &mockSnippetService{
			results: []domain.Snippet{{Keyword: "hello", Message: "world"}},
		}
		server := newTestServer(t, svc)

		_, out, err := server.handleSearch(ctx, nil, SearchInput{Fragment: "orl"})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, []SnippetOutput{{Keyword: "hello", Message: "world"}}, out.Results)
		assert.Equal(t, "orl", svc.lastFragment)
	})

	t.Run("no matches", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{results: []domain.Snippet{}})

		_, out, err := server.handleSearch(ctx, nil, SearchInput{Fragment: "zzz"})

		require.NoError(t, err)
		assert.Equal(t, 0, out.Count)
		assert.Empty(t, out.Results)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{err: errors.New("search failed")})

		_, _, err := server.handleSearch(ctx, nil, SearchInput{Fragment: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}
