package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docfind/internal/adapters/driven/storage"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/services"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockSearch := &mockSearchService{
			results: []domain.SearchResult{
				{
					Document: domain.Document{
						ID:          "song-api",
						Title:       "Song API",
						Description: "Get song details.",
						Path:        "/api/song",
						Section:     domain.SectionAPIReference,
					},
					Score:         0.82,
					MatchedFields: []domain.Field{domain.FieldTitle, domain.FieldKeywords},
				},
			},
		}

		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		result, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "song", Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, 5, mockSearch.opts.Limit)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, SearchResultOutput{
			DocumentID:    "song-api",
			Title:         "Song API",
			Description:   "Get song details.",
			Path:          "/api/song",
			Section:       "API Reference",
			Score:         0.82,
			MatchedFields: []string{"title", "keywords"},
		}, output.Results[0])

		require.NotNil(t, result)
		require.Len(t, result.Content, 1)
		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, "1. Song API (/api/song) 0.82\n", text.Text)
	})

	t.Run("no results", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		result, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "zzz"})

		require.NoError(t, err)
		assert.Zero(t, mockSearch.opts.Limit, "zero limit keeps the configured default")
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Results)
		assert.Equal(t, "No results found.", result.Content[0].(*mcp.TextContent).Text)
	})

	t.Run("negative limit", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "song", Limit: -1})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{err: errors.New("search failed")}})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "test"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleSearch_BuiltinCorpus(t *testing.T) {
	ctx := context.Background()
	store, err := storage.LoadCorpus(ctx, file.Builtin())
	require.NoError(t, err)
	search, err := services.NewSearchService(store, domain.DefaultSearchConfig())
	require.NoError(t, err)

	server, err := NewServer(&Ports{Search: search, Corpus: services.NewCorpusService(store)})
	require.NoError(t, err)

	_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "lyrics"})

	require.NoError(t, err)
	require.NotZero(t, output.Count)
	assert.LessOrEqual(t, output.Count, domain.DefaultResultLimit)
	assert.Equal(t, "lyrics-api", output.Results[0].DocumentID)
	for i := 1; i < len(output.Results); i++ {
		assert.GreaterOrEqual(t, output.Results[i-1].Score, output.Results[i].Score)
	}
}
