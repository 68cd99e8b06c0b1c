package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

// SectionIcon returns the glyph shown beside results of a section.
func SectionIcon(section domain.Section) string {
	switch section {
	case domain.SectionGettingStarted:
		return "⚡"
	case domain.SectionAPIReference:
		return "</>"
	case domain.SectionExamples:
		return "▤"
	case domain.SectionModels:
		return "◍"
	case domain.SectionUnknown:
		return " "
	}
	return " "
}

// SectionColour returns the accent colour of a section.
func (s *Styles) SectionColour(section domain.Section) lipgloss.Color {
	switch section {
	case domain.SectionGettingStarted:
		return s.theme.GettingStarted
	case domain.SectionAPIReference:
		return s.theme.APIReference
	case domain.SectionExamples:
		return s.theme.Examples
	case domain.SectionModels:
		return s.theme.Models
	case domain.SectionUnknown:
		return s.theme.Subtle
	}
	return s.theme.Subtle
}

// Section returns a foreground style in the section colour.
func (s *Styles) Section(section domain.Section) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.SectionColour(section))
}

// SectionBadge renders the section label as a badge.
func (s *Styles) SectionBadge(section domain.Section) string {
	label := section.Label()
	if label == "" {
		return ""
	}
	return s.Badge.Foreground(s.SectionColour(section)).Render(label)
}
