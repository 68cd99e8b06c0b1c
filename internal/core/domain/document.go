package domain

import (
	"fmt"
	"strings"
)

// Document is a single searchable documentation topic.
// Documents are created once when the corpus loads and never mutated.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable topic title.
	Title string

	// Description is a one or two sentence summary of the topic.
	Description string

	// Path is the navigation target, e.g. "/api/lyrics" or "/models#song".
	Path string

	// Section is the documentation section the topic belongs to.
	Section Section

	// Keywords are additional search terms, in author order.
	Keywords []string
}

// Section is the documentation section a document belongs to.
// It is a closed set; SectionUnknown marks a malformed value.
type Section int

const (
	// SectionUnknown is the zero value and never produced for valid input.
	SectionUnknown Section = iota
	// SectionGettingStarted holds installation and introductory topics.
	SectionGettingStarted
	// SectionAPIReference holds endpoint documentation.
	SectionAPIReference
	// SectionExamples holds code examples.
	SectionExamples
	// SectionModels holds response model documentation.
	SectionModels
)

// Sections returns every valid section in display order.
func Sections() []Section {
	return []Section{
		SectionGettingStarted,
		SectionAPIReference,
		SectionExamples,
		SectionModels,
	}
}

// Label returns the display label of the section.
// The label is also the text matched against queries.
func (s Section) Label() string {
	switch s {
	case SectionGettingStarted:
		return "Getting Started"
	case SectionAPIReference:
		return "API Reference"
	case SectionExamples:
		return "Examples"
	case SectionModels:
		return "Models"
	case SectionUnknown:
		return ""
	}
	return ""
}

// Slug returns the machine-readable name of the section.
func (s Section) Slug() string {
	switch s {
	case SectionGettingStarted:
		return "getting_started"
	case SectionAPIReference:
		return "api_reference"
	case SectionExamples:
		return "examples"
	case SectionModels:
		return "models"
	case SectionUnknown:
		return "unknown"
	}
	return "unknown"
}

// String implements fmt.Stringer.
func (s Section) String() string {
	return s.Slug()
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	return s >= SectionGettingStarted && s <= SectionModels
}

// ParseSection parses a section from its label or slug, case-insensitively.
func ParseSection(value string) (Section, error) {
	normalised := strings.ToLower(strings.TrimSpace(value))
	normalised = strings.NewReplacer(" ", "_", "-", "_").Replace(normalised)

	for _, s := range Sections() {
		label := strings.ReplaceAll(strings.ToLower(s.Label()), " ", "_")
		if normalised == s.Slug() || normalised == label {
			return s, nil
		}
	}
	return SectionUnknown, fmt.Errorf("%w: %q", ErrUnknownSection, value)
}

// Text returns the text of a single-valued field.
// It returns false for FieldKeywords, which is multi-valued, and for fields
// with no usable text.
func (d *Document) Text(field Field) (string, bool) {
	switch field {
	case FieldTitle:
		return d.Title, d.Title != ""
	case FieldDescription:
		return d.Description, d.Description != ""
	case FieldSection:
		label := d.Section.Label()
		return label, label != ""
	case FieldKeywords:
		return "", false
	}
	return "", false
}
