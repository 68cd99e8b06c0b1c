package domain

// Phase is the lifecycle state of a search session.
type Phase int

const (
	// PhaseClosed means the search surface is not shown.
	PhaseClosed Phase = iota
	// PhaseIdle means the surface is open with an empty query.
	PhaseIdle
	// PhaseActive means the surface is open with a non-empty query.
	PhaseActive
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// Key is a navigation key delivered to a session.
type Key int

const (
	// KeyUp moves the selection towards the first result.
	KeyUp Key = iota
	// KeyDown moves the selection towards the last result.
	KeyDown
	// KeyEnter commits the selected result.
	KeyEnter
	// KeyEscape closes the session.
	KeyEscape
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// SessionState is the transient state of one open-to-close search interaction.
type SessionState struct {
	// Query is the trimmed query text.
	Query string

	// Results is the ranked result list for Query.
	Results []SearchResult

	// SelectedIndex is the cursor into Results.
	SelectedIndex int

	// Phase is the lifecycle state.
	Phase Phase
}

// IsOpen reports whether the session is shown.
func (s SessionState) IsOpen() bool {
	return s.Phase != PhaseClosed
}

// Selected returns the selected result, or nil when there is none.
func (s SessionState) Selected() *SearchResult {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results) {
		return nil
	}
	return &s.Results[s.SelectedIndex]
}
