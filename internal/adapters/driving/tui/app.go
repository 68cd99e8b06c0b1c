package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/views/page"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/views/palette"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
	"github.com/custodia-labs/docfind/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	keymap *keymap.KeyMap

	// presenter queues the session's focus and navigation requests.
	presenter *presenter

	// session is the palette's search session.
	session driving.SessionController

	// pageView shows the current documentation page.
	pageView *page.View

	// paletteView is the search palette.
	paletteView *palette.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrInvalidPorts)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	p := &presenter{}
	session := ports.NewSession(p)

	paletteView, err := palette.NewView(s, km, session, ports.async())
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		presenter:   p,
		session:     session,
		pageView:    page.NewView(s, km, ports.Corpus),
		paletteView: paletteView,
		currentView: messages.ViewPage,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.pageView.WithContext(ctx)
	a.paletteView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It loads the start page and the table of contents.
func (a *App) Init() tea.Cmd {
	start := a.ports.StartPath
	if start == "" {
		start = "/"
	}
	return tea.Batch(
		tea.SetWindowTitle("docfind"),
		a.paletteView.Init(),
		a.pageView.Init(),
		a.pageView.Load(start),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.MouseMsg:
		if a.currentView == messages.ViewPalette {
			a.paletteView, cmd = a.paletteView.Update(msg)
			return a, a.afterSession(cmd)
		}
		return a, nil

	case messages.FocusRequested, messages.SearchResolved:
		a.paletteView, cmd = a.paletteView.Update(msg)
		return a, a.afterSession(cmd)

	case messages.NavigateRequested:
		logger.Debug("tui: navigate %s", msg.Path)
		a.currentView = messages.ViewPage
		return a, a.pageView.Load(msg.Path)

	case messages.PageLoaded, messages.ContentsLoaded:
		a.pageView, cmd = a.pageView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other component ticks.
	if a.currentView == messages.ViewPalette {
		a.paletteView, cmd = a.paletteView.Update(msg)
	}
	return a, cmd
}

// handleKeyMsg routes a key to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return tea.Quit
	}

	if a.currentView == messages.ViewPalette {
		var cmd tea.Cmd
		a.paletteView, cmd = a.paletteView.Update(msg)
		return a.afterSession(cmd)
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Open):
		a.currentView = messages.ViewPalette
		a.paletteView.Open()
		return a.afterSession(nil)
	case keymap.Matches(keyStr, a.keymap.Quit):
		return tea.Quit
	}

	var cmd tea.Cmd
	a.pageView, cmd = a.pageView.Update(msg)
	return cmd
}

// afterSession leaves the palette once the session has closed and forwards
// the session's queued requests.
func (a *App) afterSession(cmd tea.Cmd) tea.Cmd {
	if a.currentView == messages.ViewPalette && !a.paletteView.IsOpen() {
		a.currentView = messages.ViewPage
	}
	return tea.Batch(cmd, a.presenter.drain())
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPalette:
		return a.paletteView.View()
	case messages.ViewPage:
		return a.pageView.View()
	default:
		return a.pageView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	)
	_, err := p.Run()
	return err
}

// Session returns the palette's search session.
func (a *App) Session() driving.SessionController {
	return a.session
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// CurrentPath returns the path of the page shown.
func (a *App) CurrentPath() string {
	return a.pageView.Path()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.pageView.SetDimensions(width, height)
	a.paletteView.SetDimensions(width, height)
}
