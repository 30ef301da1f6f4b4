package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// PutInput is the input schema for put_snippet.
type PutInput struct {
	Keyword string `json:"keyword" jsonschema:"the name to store the snippet under"`
	Message string `json:"message" jsonschema:"the snippet text; replaces any existing text for the keyword"`
}

// KeywordInput is the input schema for get_snippet.
type KeywordInput struct {
	Keyword string `json:"keyword" jsonschema:"the name of the snippet to retrieve"`
}

// SearchInput is the input schema for search_snippets.
type SearchInput struct {
	Fragment string `json:"fragment" jsonschema:"text that must appear literally in the snippet"`
}

// SnippetOutput is a single stored snippet.
type SnippetOutput struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
}

// GetOutput is the output schema for get_snippet.
type GetOutput struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
	Found   bool   `json:"found"`
}

// CatalogOutput is the output schema for list_catalog.
type CatalogOutput struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

// SearchOutput is the output schema for search_snippets.
type SearchOutput struct {
	Results []SnippetOutput `json:"results"`
	Count   int             `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "put_snippet",
		Description: "Store a snippet under a keyword, replacing any existing snippet",
	}, s.handlePut)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_snippet",
		Description: "Retrieve the snippet stored under a keyword; found is false when there is none",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_catalog",
		Description: "List every stored keyword in ascending order",
	}, s.handleCatalog)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_snippets",
		Description: "Find snippets whose text contains a fragment",
	}, s.handleSearch)
}

func (s *Server) handlePut(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PutInput,
) (*mcp.CallToolResult, SnippetOutput, error) {
	if input.Keyword == "" {
		return nil, SnippetOutput{}, ErrEmptyKeyword
	}

	snippet, err := s.ports.Snippets.Put(ctx, input.Keyword, input.Message)
	if err != nil {
		return nil, SnippetOutput{}, err
	}
	return nil, toSnippetOutput(snippet), nil
}

func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input KeywordInput,
) (*mcp.CallToolResult, GetOutput, error) {
	if input.Keyword == "" {
		return nil, GetOutput{}, ErrEmptyKeyword
	}

	lookup, err := s.ports.Snippets.Get(ctx, input.Keyword)
	if err != nil {
		return nil, GetOutput{}, err
	}
	return nil, GetOutput{
		Keyword: input.Keyword,
		Message: lookup.Display(),
		Found:   lookup.Found,
	}, nil
}

func (s *Server) handleCatalog(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CatalogOutput, error) {
	keywords, err := s.ports.Snippets.Catalog(ctx)
	if err != nil {
		return nil, CatalogOutput{}, err
	}
	if keywords == nil {
		keywords = []string{}
	}
	return nil, CatalogOutput{Keywords: keywords, Count: len(keywords)}, nil
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Snippets.Search(ctx, input.Fragment)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SnippetOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = toSnippetOutput(results[i])
	}
	return nil, output, nil
}

func toSnippetOutput(s domain.Snippet) SnippetOutput {
	return SnippetOutput{Keyword: s.Keyword, Message: s.Message}
}
