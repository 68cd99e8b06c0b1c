package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_AllValid(t *testing.T) {
	sections := Sections()

	require.Len(t, sections, 4)
	for _, s := range sections {
		assert.True(t, s.Valid(), "section %d should be valid", s)
		assert.NotEmpty(t, s.Label())
		assert.NotEqual(t, "unknown", s.Slug())
	}
	assert.False(t, SectionUnknown.Valid())
	assert.Empty(t, SectionUnknown.Label())
}

func TestSection_Label(t *testing.T) {
	tests := []struct {
		section Section
		label   string
	}{
		{SectionGettingStarted, "Getting Started"},
		{SectionAPIReference, "API Reference"},
		{SectionExamples, "Examples"},
		{SectionModels, "Models"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.section.Label())
		})
	}
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		input string
		want  Section
	}{
		{"Getting Started", SectionGettingStarted},
		{"getting_started", SectionGettingStarted},
		{"getting-started", SectionGettingStarted},
		{"API Reference", SectionAPIReference},
		{"api_reference", SectionAPIReference},
		{"  Examples ", SectionExamples},
		{"MODELS", SectionModels},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSection(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSection_Unknown(t *testing.T) {
	got, err := ParseSection("Tutorials")

	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Equal(t, SectionUnknown, got)
}

func TestDocument_Text(t *testing.T) {
	doc := Document{
		ID:          "lyrics-api",
		Title:       "Lyrics API",
		Description: "Get song lyrics.",
		Section:     SectionAPIReference,
		Keywords:    []string{"lyrics"},
	}

	title, ok := doc.Text(FieldTitle)
	assert.True(t, ok)
	assert.Equal(t, "Lyrics API", title)

	desc, ok := doc.Text(FieldDescription)
	assert.True(t, ok)
	assert.Equal(t, "Get song lyrics.", desc)

	section, ok := doc.Text(FieldSection)
	assert.True(t, ok)
	assert.Equal(t, "API Reference", section)

	_, ok = doc.Text(FieldKeywords)
	assert.False(t, ok, "keywords are multi-valued")
}

func TestDocument_Text_Missing(t *testing.T) {
	doc := Document{ID: "empty"}

	for _, f := range Fields() {
		_, ok := doc.Text(f)
		assert.False(t, ok, "field %s should have no text", f)
	}
}
