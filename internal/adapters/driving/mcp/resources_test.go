package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

func TestExtractKeyword(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "plain keyword", uri: "snippets://snippet/hello", expected: "hello"},
		{name: "escaped keyword", uri: "snippets://snippet/my%20note", expected: "my note"},
		{name: "invalid prefix", uri: "file://snippet/hello", expected: ""},
		{name: "bad escape", uri: "snippets://snippet/%zz", expected: ""},
		{name: "no keyword", uri: "snippets://snippet/", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractKeyword(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCatalogResource(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog is an empty array", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{})

		result, err := server.handleCatalogResource(ctx, makeReadResourceRequest(catalogURI))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	})

	t.Run("lists keywords", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{keywords: []string{"alpha", "beta"}})

		result, err := server.handleCatalogResource(ctx, makeReadResourceRequest(catalogURI))

		require.NoError(t, err)
		assert.JSONEq(t, `["alpha","beta"]`, result.Contents[0].Text)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{err: errors.New("database error")})

		_, err := server.handleCatalogResource(ctx, makeReadResourceRequest(catalogURI))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing catalog")
	})
}

func TestServer_handleSnippetResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns snippet text", func(t *testing.T) {
		svc := &mockSnippetService{
			lookup: domain.Found(domain.Snippet{Keyword: "my note", Message: "remember"}),
		}
		server := newTestServer(t, svc)

		result, err := server.handleSnippetResource(ctx, makeReadResourceRequest("snippets://snippet/my%20note"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "remember", result.Contents[0].Text)
		assert.Equal(t, "my note", svc.lastKeyword)
	})

	t.Run("missing snippet is not found", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{lookup: domain.Missing("ghost")})

		_, err := server.handleSnippetResource(ctx, makeReadResourceRequest("snippets://snippet/ghost"))

		require.Error(t, err)
	})

	t.Run("bad URI is not found", func(t *testing.T) {
		svc := &mockSnippetService{}
		server := newTestServer(t, svc)

		_, err := server.handleSnippetResource(ctx, makeReadResourceRequest("snippets://other"))

		require.Error(t, err)
		assert.Empty(t, svc.lastKeyword)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server := newTestServer(t, &mockSnippetService{err: errors.New("database error")})

		_, err := server.handleSnippetResource(ctx, makeReadResourceRequest("snippets://snippet/k"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting snippet")
	})
}
