// Package palette provides the search palette view for the TUI.
package palette

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
)

// EmptyHint is shown while the query is empty.
const EmptyHint = "Start typing to search the documentation"

// View is the search palette: a query input over ranked results.
// All query, result and selection state lives in the session; the view
// forwards input to it and renders its snapshots.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	session driving.SessionController
	ctx     context.Context
	async   bool

	// pending is the most recent ticket dispatched for async ranking.
	pending   driving.Ticket
	searching bool

	width  int
	height int

	// listTop and panelHeight are recorded by View for mouse hit testing.
	listTop     int
	panelHeight int
}

// NewView creates a new palette view over session.
// With async set, queries are ranked in a command instead of inside Update.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session driving.SessionController,
	async bool,
) (*View, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewResultList(s),
		statusbar: status.NewBar(s, km),
		session:   session,
		ctx:       context.Background(),
		async:     async,
		width:     80,
		height:    24,
	}, nil
}

// WithContext sets the context used for async ranking.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Open clears the input and opens a fresh session.
func (v *View) Open() {
	v.input.Reset()
	v.searching = false
	v.session.Open()
	v.sync()
}

// Focus focuses the query input.
func (v *View) Focus() tea.Cmd {
	return v.input.Focus()
}

// IsOpen reports whether the session is open.
func (v *View) IsOpen() bool {
	return v.session.State().IsOpen()
}

// Update handles messages for the palette.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		cmd = v.handleKeyMsg(msg)

	case tea.MouseMsg:
		v.handleMouseMsg(msg)

	case messages.SearchResolved:
		v.session.Apply(msg.Ticket, msg.Results)
		if msg.Ticket == v.pending {
			v.searching = false
		}

	case messages.FocusRequested:
		return v, v.Focus()

	default:
		v.input, cmd, _ = v.input.Update(msg)
	}

	v.sync()
	return v, cmd
}

// handleKeyMsg maps navigation keys onto the session and typing onto the query.
func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Close):
		v.session.Press(domain.KeyEscape)
	case keymap.Matches(keyStr, v.keymap.Up):
		v.session.Press(domain.KeyUp)
	case keymap.Matches(keyStr, v.keymap.Down):
		v.session.Press(domain.KeyDown)
	case keymap.Matches(keyStr, v.keymap.Select):
		v.session.Press(domain.KeyEnter)
	default:
		var cmd tea.Cmd
		var changed bool
		v.input, cmd, changed = v.input.Update(msg)
		if changed {
			return tea.Batch(cmd, v.query(v.input.Value()))
		}
		return cmd
	}
	return nil
}

// handleMouseMsg commits a clicked result. Clicks below the panel close it.
func (v *View) handleMouseMsg(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}

	if v.panelHeight > 0 && msg.Y >= v.panelHeight {
		v.session.Close()
		return
	}

	if index := v.list.IndexAt(msg.Y - v.listTop); index >= 0 {
		v.session.Click(v.list.Results()[index].Document.ID)
	}
}

// query hands new query text to the session.
func (v *View) query(text string) tea.Cmd {
	if !v.async {
		v.session.Input(text)
		return nil
	}

	t := v.session.Stage(text)
	v.pending = t
	if t.Query == "" || !v.session.State().IsOpen() {
		v.searching = false
		return nil
	}

	v.searching = true
	session, ctx := v.session, v.ctx
	return func() tea.Msg {
		return messages.SearchResolved{Ticket: t, Results: session.Resolve(ctx, t)}
	}
}

// sync mirrors the session snapshot into the components.
func (v *View) sync() {
	state := v.session.State()
	if !state.IsOpen() {
		v.input.Blur()
		v.searching = false
	}

	v.list.SetResults(state.Results, state.SelectedIndex, state.Query)
	v.statusbar.SetResultCount(len(state.Results))
	switch {
	case v.searching:
		v.statusbar.SetState(status.StateSearching)
	case len(state.Results) > 0:
		v.statusbar.SetState(status.StateResults)
	default:
		v.statusbar.SetState(status.StateReady)
	}
}

// View renders the palette.
func (v *View) View() string {
	state := v.session.State()

	header := v.input.View()
	body := v.renderBody(state)
	footer := v.statusbar.View()

	v.listTop = lipgloss.Height(header) + 1
	panel := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	v.panelHeight = lipgloss.Height(panel)
	return panel
}

func (v *View) renderBody(state domain.SessionState) string {
	if state.Query == "" {
		hints := v.styles.Key.Render("↑") + " " + v.styles.Key.Render("↓") +
			v.styles.Muted.Render(" to navigate   ") +
			v.styles.Key.Render("Enter") + v.styles.Muted.Render(" to select")
		return lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Muted.Render(EmptyHint),
			"",
			hints,
		)
	}

	if len(state.Results) == 0 {
		if v.searching {
			return v.styles.Muted.Render("Searching...")
		}
		return v.styles.Muted.Render(fmt.Sprintf("No results found for \"%s\"", state.Query))
	}

	return v.list.View()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)

	// input (3) + spacers (2) + status bar (1)
	listHeight := height - 6
	if listHeight < 2 {
		listHeight = 2
	}
	v.list.SetDimensions(width, listHeight)
}

// Query returns the current input text.
func (v *View) Query() string {
	return v.input.Value()
}

// Searching reports whether an async ranking is outstanding.
func (v *View) Searching() bool {
	return v.searching
}
