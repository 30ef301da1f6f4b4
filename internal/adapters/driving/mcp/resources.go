package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for snippet resources.
	uriScheme = "snippets://"

	catalogURI    = uriScheme + "catalog"
	snippetPrefix = uriScheme + "snippet/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         catalogURI,
		Name:        "catalog",
		Description: "Every stored keyword in ascending order",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: snippetPrefix + "{keyword}",
		Name:        "snippet",
		Description: "Text of the snippet stored under a keyword",
		MIMEType:    "text/plain",
	}, s.handleSnippetResource)
}

// handleCatalogResource returns the catalog as a JSON array.
func (s *Server) handleCatalogResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	keywords, err := s.ports.Snippets.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	if keywords == nil {
		keywords = []string{}
	}

	data, err := json.MarshalIndent(keywords, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSnippetResource returns the text of one snippet.
// Keywords with nothing stored are reported as not found.
func (s *Server) handleSnippetResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	keyword := extractKeyword(req.Params.URI)
	if keyword == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	lookup, err := s.ports.Snippets.Get(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("getting snippet: %w", err)
	}
	if !lookup.Found {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     lookup.Message,
		}},
	}, nil
}

// extractKeyword extracts the keyword from a URI like snippets://snippet/{keyword}.
// The keyword is path-unescaped; an invalid escape yields "".
func extractKeyword(uri string) string {
	if !strings.HasPrefix(uri, snippetPrefix) {
		return ""
	}

	keyword, err := url.PathUnescape(strings.TrimPrefix(uri, snippetPrefix))
	if err != nil {
		return ""
	}
	return keyword
}
