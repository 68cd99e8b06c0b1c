package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
	"github.com/custodia-labs/docfind/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionController = (*Session)(nil)

// Session is the query session controller: it owns the query, the ranked
// results, the selection cursor and the open/closed lifecycle of one search
// surface, and emits focus and navigation requests to the presenter.
//
// States and transitions:
//
//	Closed --Open--> Idle --Input(non-empty)--> Active --Input("")--> Idle
//	Idle|Active --Escape|Close|Click|Enter(with result)--> Closed
//
// Every Open, Close and Stage bumps a sequence number; results computed for
// an older sequence are dropped by Apply.
type Session struct {
	id        string
	search    driving.SearchService
	presenter driven.Presenter
	state     domain.SessionState
	seq       uint64
}

// NewSession creates a closed session.
// The presenter is optional; without one, focus and navigation requests are dropped.
func NewSession(search driving.SearchService, presenter driven.Presenter) *Session {
	return &Session{
		id:        uuid.NewString(),
		search:    search,
		presenter: presenter,
		state:     closedState(),
	}
}

// ID returns the identifier of the current open/close cycle.
func (s *Session) ID() string {
	return s.id
}

// Open starts a clean session and requests input focus.
// Opening an open session discards its state as well.
func (s *Session) Open() {
	s.seq++
	s.id = uuid.NewString()
	s.state = domain.SessionState{
		Query:   "",
		Results: []domain.SearchResult{},
		Phase:   domain.PhaseIdle,
	}
	logger.Debug("session %s: opened", s.id)

	if s.presenter != nil {
		s.presenter.Focus()
	}
}

// Close ends the session, discarding query and results.
func (s *Session) Close() {
	s.seq++
	if s.state.IsOpen() {
		logger.Debug("session %s: closed", s.id)
	}
	s.state = closedState()
}

// Input replaces the query text and recomputes results synchronously.
func (s *Session) Input(text string) {
	t := s.Stage(text)
	if !s.state.IsOpen() {
		return
	}
	s.Apply(t, s.Resolve(context.Background(), t))
}

// Stage records new query text and moves between Idle and Active.
// Results for the previous query stay visible until Apply installs new ones,
// except when the query becomes empty.
func (s *Session) Stage(text string) driving.Ticket {
	query := strings.TrimSpace(text)
	if !s.state.IsOpen() {
		logger.Debug("session %s: input ignored while closed", s.id)
		return driving.Ticket{Seq: s.seq, Query: query}
	}

	s.seq++
	s.state.Query = query
	if query == "" {
		s.state.Phase = domain.PhaseIdle
		s.state.Results = []domain.SearchResult{}
		s.state.SelectedIndex = 0
	} else {
		s.state.Phase = domain.PhaseActive
	}
	return driving.Ticket{Seq: s.seq, Query: query}
}

// Resolve computes results for t. It reads no mutable session state and is
// safe to call from another goroutine.
func (s *Session) Resolve(ctx context.Context, t driving.Ticket) []domain.SearchResult {
	if t.Query == "" || s.search == nil {
		return []domain.SearchResult{}
	}

	results, err := s.search.Search(ctx, t.Query, domain.SearchOptions{})
	if err != nil {
		logger.Debug("resolve seq %d: %v", t.Seq, err)
		return nil
	}
	return results
}

// Apply installs results for t when t is the most recent ticket of an open session.
func (s *Session) Apply(t driving.Ticket, results []domain.SearchResult) bool {
	if !s.state.IsOpen() || t.Seq != s.seq {
		logger.Debug("session %s: dropping stale results for seq %d (current %d)", s.id, t.Seq, s.seq)
		return false
	}
	if results == nil || t.Query == "" {
		results = []domain.SearchResult{}
	}

	s.state.Results = results
	s.state.SelectedIndex = 0
	logger.Debug("session %s: %d results for %q", s.id, len(results), t.Query)
	return true
}

// Press handles a navigation key.
func (s *Session) Press(key domain.Key) {
	if !s.state.IsOpen() {
		return
	}

	switch key {
	case domain.KeyUp:
		if s.state.SelectedIndex > 0 {
			s.state.SelectedIndex--
		}
	case domain.KeyDown:
		if s.state.SelectedIndex < len(s.state.Results)-1 {
			s.state.SelectedIndex++
		}
	case domain.KeyEnter:
		selected := s.state.Selected()
		if selected == nil || selected.Document.Path == "" {
			return
		}
		s.commit(selected.Document.Path)
	case domain.KeyEscape:
		s.Close()
	}
}

// Click commits the result for documentID. An unknown ID only closes the session.
func (s *Session) Click(documentID string) {
	if !s.state.IsOpen() {
		return
	}

	for i := range s.state.Results {
		doc := &s.state.Results[i].Document
		if doc.ID == documentID && doc.Path != "" {
			s.commit(doc.Path)
			return
		}
	}
	s.Close()
}

// State returns a snapshot of the session state.
func (s *Session) State() domain.SessionState {
	snapshot := s.state
	if s.state.Results != nil {
		snapshot.Results = make([]domain.SearchResult, len(s.state.Results))
		copy(snapshot.Results, s.state.Results)
	}
	return snapshot
}

// commit emits navigation to path and closes the session.
func (s *Session) commit(path string) {
	logger.Debug("session %s: navigate %s", s.id, path)
	if s.presenter != nil {
		s.presenter.Navigate(path)
	}
	s.Close()
}

func closedState() domain.SessionState {
	return domain.SessionState{Phase: domain.PhaseClosed}
}
