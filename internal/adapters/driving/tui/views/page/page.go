// Package page provides the documentation page view for the TUI.
package page

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
)

// View shows the document at the current navigation path, followed by the
// other topics of its section.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	corpus    driving.CorpusService
	ctx       context.Context

	path     string
	document *domain.Document
	contents []domain.Document
	lines    []string

	scrollOffset int
	width        int
	height       int
	loading      bool
	err          error
}

// NewView creates a new page view.
func NewView(s *styles.Styles, km *keymap.KeyMap, corpus driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateReading)

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
		corpus:    corpus,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for corpus lookups.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the table of contents.
func (v *View) Init() tea.Cmd {
	corpus, ctx := v.corpus, v.ctx
	return func() tea.Msg {
		docs, err := corpus.List(ctx)
		return messages.ContentsLoaded{Documents: docs, Err: err}
	}
}

// Load returns a command that resolves path to a page.
func (v *View) Load(path string) tea.Cmd {
	v.path = path
	v.loading = true
	v.statusbar.SetMessage(path)

	corpus, ctx := v.corpus, v.ctx
	return func() tea.Msg {
		doc, err := corpus.Resolve(ctx, path)
		return messages.PageLoaded{Path: path, Document: doc, Err: err}
	}
}

// Update handles messages for the page view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		v.handleKeyMsg(msg)

	case messages.PageLoaded:
		if msg.Path != v.path {
			return v, nil
		}
		v.loading = false
		v.document = msg.Document
		v.err = msg.Err
		v.scrollOffset = 0
		v.render()

	case messages.ContentsLoaded:
		if msg.Err == nil {
			v.contents = msg.Documents
			v.render()
		}
	}

	return v, nil
}

// handleKeyMsg scrolls the page.
func (v *View) handleKeyMsg(msg tea.KeyMsg) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.ScrollUp):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(keyStr, v.keymap.ScrollDown):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case keyStr == "home" || keyStr == "g":
		v.scrollOffset = 0
	case keyStr == "end" || keyStr == "G":
		v.scrollOffset = v.maxScrollOffset()
	}
}

// render lays the current page out as lines.
func (v *View) render() {
	v.lines = nil
	if v.document == nil {
		return
	}

	doc := v.document
	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	wrap := lipgloss.NewStyle().Width(contentWidth)

	v.lines = append(v.lines,
		v.styles.Section(doc.Section).Render(styles.SectionIcon(doc.Section))+" "+
			v.styles.Title.Render(doc.Title)+"  "+v.styles.SectionBadge(doc.Section),
		v.styles.Muted.Render(doc.Path),
		"",
	)
	v.lines = append(v.lines, strings.Split(wrap.Render(doc.Description), "\n")...)

	if len(doc.Keywords) > 0 {
		tags := make([]string, len(doc.Keywords))
		for i, k := range doc.Keywords {
			tags[i] = v.styles.Badge.Render(k)
		}
		v.lines = append(v.lines, "", strings.Join(tags, " "))
	}

	related := v.sectionTopics(doc)
	if len(related) == 0 {
		return
	}
	v.lines = append(v.lines, "", v.styles.Subtitle.Render("In "+doc.Section.Label()))
	for i := range related {
		marker := "  "
		style := v.styles.Normal
		if related[i].ID == doc.ID {
			marker = "› "
			style = style.Bold(true)
		}
		v.lines = append(v.lines, marker+style.Render(related[i].Title)+"  "+v.styles.Muted.Render(related[i].Path))
	}
}

// sectionTopics returns the corpus documents sharing doc's section.
func (v *View) sectionTopics(doc *domain.Document) []domain.Document {
	if !doc.Section.Valid() {
		return nil
	}
	var out []domain.Document
	for i := range v.contents {
		if v.contents[i].Section == doc.Section {
			out = append(out, v.contents[i])
		}
	}
	return out
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for the header, separator and status bar
	available := v.height - 4
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the page view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("docfind"))
	b.WriteString(v.styles.Muted.Render("  " + v.path))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(strings.Repeat("─", max(v.width-2, 10))))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case errors.Is(v.err, domain.ErrNotFound):
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Page not found: %s", v.path)))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Press ctrl+k to search the documentation."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	default:
		end := min(v.scrollOffset+v.visibleLines(), len(v.lines))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.lines[i])
			b.WriteString("\n")
		}
	}

	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
	v.render()
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// Path returns the current navigation path.
func (v *View) Path() string {
	return v.path
}

// Document returns the document shown, or nil.
func (v *View) Document() *domain.Document {
	return v.document
}

// ScrollOffset returns the current scroll offset.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
