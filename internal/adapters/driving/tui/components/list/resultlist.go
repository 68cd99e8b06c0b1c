// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docfind/internal/core/domain"
)

// rowHeight is the number of lines rendered per result.
const rowHeight = 2

// ResultList displays ranked search results. Selection is owned by the
// search session; the list only mirrors it.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	query    string
	start    int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 16,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// View renders the visible window of results, two lines per result.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return ""
	}

	r.scroll()
	end := r.start + r.visibleCount()
	if end > len(r.results) {
		end = len(r.results)
	}

	lines := make([]string, 0, (end-r.start)*rowHeight)
	for i := r.start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i])...)
	}
	return strings.Join(lines, "\n")
}

// renderResult formats a result as a title line and a description line.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) []string {
	doc := &result.Document
	selected := index == r.selected

	indicator := "  "
	if selected {
		indicator = r.styles.Title.Render("▌ ")
	}

	icon := r.styles.Section(doc.Section).Render(styles.SectionIcon(doc.Section))
	badge := r.styles.SectionBadge(doc.Section)
	arrow := r.styles.Muted.Render("›")

	title := doc.Title
	if title == "" {
		title = "(Untitled)"
	}
	maxTitle := r.width - lipgloss.Width(badge) - 12
	if maxTitle < 10 {
		maxTitle = 10
	}
	title = truncate(title, maxTitle)

	base := r.styles.Normal
	if selected {
		base = base.Bold(true)
	}
	titleLine := indicator + icon + " " + Highlight(title, r.query, base, r.styles.Match)
	if badge != "" {
		titleLine += "  " + badge
	}
	gap := r.width - lipgloss.Width(titleLine) - lipgloss.Width(arrow)
	if gap > 0 {
		titleLine += strings.Repeat(" ", gap) + arrow
	}

	maxDesc := r.width - 6
	if maxDesc < 20 {
		maxDesc = 20
	}
	descLine := r.styles.Muted.Render("     " + truncate(doc.Description, maxDesc))

	return []string{titleLine, descLine}
}

// SetResults mirrors the session's results, selection and query.
func (r *ResultList) SetResults(results []domain.SearchResult, selected int, query string) {
	r.results = results
	r.selected = selected
	r.query = query
	r.scroll()
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// IndexAt returns the index of the result drawn on line, counted from the
// top of the list view, or -1 when no result is drawn there.
func (r *ResultList) IndexAt(line int) int {
	if line < 0 {
		return -1
	}
	index := r.start + line/rowHeight
	if line/rowHeight >= r.visibleCount() || index >= len(r.results) {
		return -1
	}
	return index
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
	r.scroll()
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}

func (r *ResultList) visibleCount() int {
	n := r.height / rowHeight
	if n < 1 {
		n = 1
	}
	return n
}

// scroll keeps the selected result inside the visible window.
func (r *ResultList) scroll() {
	visible := r.visibleCount()
	if r.selected < r.start {
		r.start = r.selected
	}
	if r.selected >= r.start+visible {
		r.start = r.selected - visible + 1
	}
	if maxStart := len(r.results) - visible; r.start > maxStart {
		r.start = maxStart
	}
	if r.start < 0 {
		r.start = 0
	}
}

// truncate shortens s to at most max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
