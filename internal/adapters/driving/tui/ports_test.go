package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPorts(t *testing.T) {
	ports := newTestPorts(t)

	require.NotNil(t, ports)
	assert.Equal(t, "/", ports.StartPath)
	assert.Zero(t, ports.AsyncThreshold)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Ports)
		wantErr error
	}{
		{"missing search", func(p *Ports) { p.Search = nil }, ErrMissingSearchService},
		{"missing corpus", func(p *Ports) { p.Corpus = nil }, ErrMissingCorpusService},
		{"missing session factory", func(p *Ports) { p.NewSession = nil }, ErrMissingSessionFactory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := newTestPorts(t)
			tt.mutate(ports)

			assert.ErrorIs(t, ports.Validate(), tt.wantErr)
		})
	}
}

func TestPorts_Async(t *testing.T) {
	ports := newTestPorts(t)
	assert.False(t, ports.async(), "zero threshold is always synchronous")

	ports.AsyncThreshold = 4
	assert.True(t, ports.async())

	ports.AsyncThreshold = 5
	assert.False(t, ports.async())
}
