// Package tui provides the interactive snippet browser.
// It is a driving adapter over the snippet service.
package tui

import (
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports the browser needs.
type Ports struct {
	// Snippets reads the catalog, single snippets and search results.
	Snippets driving.SnippetService
}

// NewPorts creates a Ports aggregate over the given snippet service.
func NewPorts(snippets driving.SnippetService) *Ports {
	return &Ports{Snippets: snippets}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Snippets == nil {
		return ErrMissingSnippetService
	}
	return nil
}
