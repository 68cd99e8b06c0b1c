package palette

import "errors"

// Error definitions for the palette view.
var (
	// ErrNoSession indicates that no search session was provided.
	ErrNoSession = errors.New("palette: search session is required")
)
