package driving

import (
	"context"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

// Ticket identifies a staged query. Results are only applied for the
// ticket issued most recently.
type Ticket struct {
	// Seq is the session sequence number when the ticket was issued.
	Seq uint64

	// Query is the trimmed query text.
	Query string
}

// SessionController drives one interactive search session.
// A controller is not safe for concurrent use; Resolve is the exception and
// may run on any goroutine.
type SessionController interface {
	// ID returns the session identifier used in logs.
	ID() string

	// Open starts a clean session and requests input focus.
	Open()

	// Close ends the session, discarding query and results.
	Close()

	// Input replaces the query text and recomputes results synchronously.
	Input(text string)

	// Press handles a navigation key.
	Press(key domain.Key)

	// Click commits the result with the given document ID.
	Click(documentID string)

	// Stage records new query text and returns a ticket for it.
	// The returned ticket supersedes all earlier ones.
	Stage(text string) Ticket

	// Resolve computes results for a ticket without touching session state.
	Resolve(ctx context.Context, t Ticket) []domain.SearchResult

	// Apply installs results for t if t is still current.
	// It reports whether the results were applied.
	Apply(t Ticket, results []domain.SearchResult) bool

	// State returns a snapshot of the session state.
	State() domain.SessionState
}
