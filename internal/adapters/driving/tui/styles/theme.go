// Package styles provides the colour palette and lipgloss styles of the TUI.
//
// The palette follows the dark docs site: a navy surface, a purple accent and
// one accent per documentation section.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette of the TUI.
type Theme struct {
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Subtle    lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Section accents, one per documentation section.
	GettingStarted lipgloss.Color
	APIReference   lipgloss.Color
	Examples       lipgloss.Color
	Models         lipgloss.Color
}

// DefaultTheme returns the docs site palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#8B5CF6"),
		Text:      lipgloss.Color("#F3F4F6"),
		Subtle:    lipgloss.Color("#6B7280"),
		Surface:   lipgloss.Color("#1A1A2E"),
		Border:    lipgloss.Color("#374151"),
		Highlight: lipgloss.Color("#A78BFA"),
		Warning:   lipgloss.Color("#FBBF24"),
		Error:     lipgloss.Color("#F87171"),

		GettingStarted: lipgloss.Color("#FACC15"),
		APIReference:   lipgloss.Color("#818CF8"),
		Examples:       lipgloss.Color("#4ADE80"),
		Models:         lipgloss.Color("#C084FC"),
	}
}

// Styles holds the styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style

	// InputField frames the query input of the palette.
	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// Match marks matched characters in result titles.
	Match lipgloss.Style

	// Badge has no foreground; SectionBadge sets one per section.
	Badge lipgloss.Style

	// Key renders keyboard hints such as Enter.
	Key lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	chip := lipgloss.NewStyle().
		Background(theme.Surface).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Subtle),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text).
			Background(theme.Accent),
		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(theme.Border),

		Match: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(theme.Highlight),
		Badge: chip,
		Key:   chip.Foreground(theme.Subtle),
	}
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette behind these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
