package mcp

import (
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Search ranks the corpus against queries.
	Search driving.SearchService

	// Corpus lists and reads documents. Optional; without it the
	// document resources are empty.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
