package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
)

// Ensure presenter implements the interface.
var _ driven.Presenter = (*presenter)(nil)

// presenter queues session requests as messages. The app drains the queue
// after every session call so requests re-enter the update loop in order.
type presenter struct {
	pending []tea.Msg
}

// Focus queues a focus request.
func (p *presenter) Focus() {
	p.pending = append(p.pending, messages.FocusRequested{})
}

// Navigate queues a navigation request.
func (p *presenter) Navigate(path string) {
	p.pending = append(p.pending, messages.NavigateRequested{Path: path})
}

// drain returns the queued requests as a command and empties the queue.
func (p *presenter) drain() tea.Cmd {
	if len(p.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(p.pending))
	for _, msg := range p.pending {
		cmds = append(cmds, emit(msg))
	}
	p.pending = nil
	return tea.Sequence(cmds...)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
