// Package tui provides an interactive terminal user interface for docfind:
// a documentation page reader with a search palette on top.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
)

// SessionFactory creates a search session reporting to presenter.
type SessionFactory func(presenter driven.Presenter) driving.SessionController

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks documents for the palette.
	Search driving.SearchService

	// Corpus resolves navigation paths to pages.
	Corpus driving.CorpusService

	// NewSession creates the palette's search session.
	NewSession SessionFactory

	// AsyncThreshold is the corpus size from which queries are ranked off
	// the update loop. Zero ranks every query synchronously.
	AsyncThreshold int

	// StartPath is the page shown at startup. Defaults to "/".
	StartPath string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	corpus driving.CorpusService,
	newSession SessionFactory,
) *Ports {
	return &Ports{
		Search:     search,
		Corpus:     corpus,
		NewSession: newSession,
		StartPath:  "/",
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	if p.NewSession == nil {
		return ErrMissingSessionFactory
	}
	return nil
}

// async reports whether queries should be ranked off the update loop.
func (p *Ports) async() bool {
	return p.AsyncThreshold > 0 && p.Corpus.Count() >= p.AsyncThreshold
}
