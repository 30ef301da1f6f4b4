// Package mcp provides an MCP (Model Context Protocol) server adapter for snippets.
// It lets AI assistants store, read, list and search snippets.
package mcp

import "errors"

// ErrMissingSnippetService is returned when the snippet service is not provided.
var ErrMissingSnippetService = errors.New("mcp: snippet service is required")

// ErrEmptyKeyword is returned when a tool is called without a keyword.
var ErrEmptyKeyword = errors.New("mcp: keyword is required")
