// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewPage shows a documentation page.
	ViewPage ViewType = iota
	// ViewPalette is the search palette over the page.
	ViewPalette
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPage:
		return "page"
	case ViewPalette:
		return "palette"
	default:
		return "unknown"
	}
}

// FocusRequested asks the palette to focus its query input.
type FocusRequested struct{}

// NavigateRequested asks the app to show the page at Path.
type NavigateRequested struct {
	Path string
}

// SearchResolved carries results computed off the update loop for a staged query.
type SearchResolved struct {
	Ticket  driving.Ticket
	Results []domain.SearchResult
}

// PageLoaded carries the document resolved for a navigation path.
type PageLoaded struct {
	Path     string
	Document *domain.Document
	Err      error
}

// ContentsLoaded carries the table of contents shown beside pages.
type ContentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
