package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Nil(t, bar.Init())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_Setters(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateSearching)
	bar.SetMessage("boom")
	bar.SetResultCount(4)
	bar.SetWidth(120)

	assert.Equal(t, StateSearching, bar.State())
	assert.Equal(t, "boom", bar.Message())
	assert.Equal(t, 4, bar.ResultCount())
	assert.Equal(t, 120, bar.Width())
}

func TestResultCount(t *testing.T) {
	assert.Equal(t, "0 results", ResultCount(0))
	assert.Equal(t, "1 result", ResultCount(1))
	assert.Equal(t, "8 results", ResultCount(8))
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		count    int
		contains []string
		excludes []string
	}{
		{"ready", StateReady, "", 0, []string{"enter", "select", "esc"}, []string{"result"}},
		{"searching", StateSearching, "", 0, []string{"Searching..."}, nil},
		{"error", StateError, "", 0, []string{"Error"}, nil},
		{"error with message", StateError, "corpus gone", 0, []string{"Error: corpus gone"}, nil},
		{"one result", StateResults, "", 1, []string{"1 result"}, []string{"1 results"}},
		{"results", StateResults, "", 3, []string{"3 results", "↑", "↓"}, nil},
		{"reading", StateReading, "/api/lyrics", 0, []string{"/api/lyrics", "ctrl+k", "quit"}, []string{"select"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetResultCount(tt.count)

			view := bar.View()

			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, view, s)
			}
		})
	}
}
