package mcp

import (
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Snippets stores and reads snippets.
	Snippets driving.SnippetService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Snippets == nil {
		return ErrMissingSnippetService
	}
	return nil
}
