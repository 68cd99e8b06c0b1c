package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docfind/internal/core/domain"
)

// fixtureCorpus is a small corpus with known scores.
func fixtureCorpus() []domain.Document {
	return []domain.Document{
		{
			ID:          "song-api",
			Title:       "Song API",
			Description: "Retrieve detailed song information.",
			Path:        "/api/song",
			Section:     domain.SectionAPIReference,
			Keywords:    []string{"song", "track"},
		},
		{
			ID:          "album-api",
			Title:       "Album API",
			Description: "Get album details with full track listings.",
			Path:        "/api/album",
			Section:     domain.SectionAPIReference,
			Keywords:    []string{"album", "tracks"},
		},
		{
			ID:          "models",
			Title:       "Data Models",
			Description: "Documentation for all data models.",
			Path:        "/models",
			Section:     domain.SectionModels,
			Keywords:    []string{"model", "type"},
		},
		{
			ID:          "home",
			Title:       "Home",
			Description: "Welcome to the documentation.",
			Path:        "/",
			Section:     domain.SectionGettingStarted,
			Keywords:    []string{"welcome", "start"},
		},
	}
}

func resultIDs(results []domain.SearchResult) []string {
	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].Document.ID
	}
	return ids
}

func builtinDocuments(t *testing.T) []domain.Document {
	t.Helper()
	docs, err := file.Builtin().Load(context.Background())
	require.NoError(t, err)
	return docs
}

func TestRank_ExactTitleRanksFirst(t *testing.T) {
	results := Rank(fixtureCorpus(), "Song API", domain.DefaultSearchConfig())

	require.NotEmpty(t, results)
	top := results[0]
	assert.Equal(t, "song-api", top.Document.ID)
	assert.True(t, top.Matched(domain.FieldTitle))
	assert.InDelta(t, 1.0, top.FieldScores[domain.FieldTitle], 1e-9)
	assert.InDelta(t, 0.8125, top.Score, 1e-9)
}

func TestRank_Scores(t *testing.T) {
	results := Rank(fixtureCorpus(), "welcome", domain.DefaultSearchConfig())

	require.Equal(t, []string{"home", "models", "song-api", "album-api"}, resultIDs(results))

	home := results[0]
	assert.Equal(t, []domain.Field{domain.FieldTitle, domain.FieldDescription, domain.FieldKeywords}, home.MatchedFields)
	assert.InDelta(t, 1-4.0/7, home.FieldScores[domain.FieldTitle], 1e-9)
	assert.InDelta(t, 0.4*(1-4.0/7)+0.3+0.2, home.Score, 1e-9)

	section := results[2]
	assert.Equal(t, []domain.Field{domain.FieldSection}, section.MatchedFields)
}

func TestRank_NoMatch(t *testing.T) {
	results := Rank(fixtureCorpus(), "xyz123nomatch", domain.DefaultSearchConfig())

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRank_ShortQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "s", " a "} {
		results := Rank(fixtureCorpus(), query, domain.DefaultSearchConfig())

		assert.NotNil(t, results, "query %q", query)
		assert.Empty(t, results, "query %q", query)
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	results := Rank(nil, "song", domain.DefaultSearchConfig())

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRank_SortedAndBounded(t *testing.T) {
	cfg := domain.DefaultSearchConfig()
	docs := builtinDocuments(t)

	for _, query := range []string{"song", "api", "albm", "lyrcs", "error", "models", "api song"} {
		results := Rank(docs, query, cfg)

		assert.LessOrEqual(t, len(results), cfg.Limit, "query %q", query)
		for i := range results {
			r := &results[i]
			assert.NotEmpty(t, r.MatchedFields, "query %q", query)
			assert.Greater(t, r.Score, 0.0, "query %q", query)
			if i > 0 {
				assert.GreaterOrEqual(t, results[i-1].Score, r.Score, "query %q", query)
			}
			for _, f := range r.MatchedFields {
				assert.GreaterOrEqual(t, r.FieldScores[f], cfg.Threshold)
				assert.LessOrEqual(t, r.FieldScores[f], 1.0)
			}
		}
	}
}

func TestRank_TiesKeepCorpusOrder(t *testing.T) {
	results := Rank(fixtureCorpus(), "api", domain.DefaultSearchConfig())

	require.GreaterOrEqual(t, len(results), 4)
	assert.Equal(t, []string{"song-api", "album-api", "models", "home"}, resultIDs(results))
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, results[2].Score, results[3].Score)
}

func TestRank_TiesKeepCorpusOrder_Builtin(t *testing.T) {
	results := Rank(builtinDocuments(t), "song", domain.DefaultSearchConfig())

	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "song-api", results[0].Document.ID)
	assert.Equal(t, "model-song", results[1].Document.ID)
	assert.Equal(t, results[0].Score, results[1].Score)
}

func TestRank_Limit(t *testing.T) {
	cfg := domain.DefaultSearchConfig()
	cfg.Limit = 2

	results := Rank(fixtureCorpus(), "api", cfg)

	assert.Equal(t, []string{"song-api", "album-api"}, resultIDs(results))
}

func TestRank_BestKeywordWins(t *testing.T) {
	results := Rank(fixtureCorpus(), "tracks", domain.DefaultSearchConfig())

	require.Len(t, results, 2)
	song := results[1]
	assert.Equal(t, "song-api", song.Document.ID)
	assert.Equal(t, []domain.Field{domain.FieldKeywords}, song.MatchedFields)
	assert.InDelta(t, 1-1.0/6, song.FieldScores[domain.FieldKeywords], 1e-9, "scored against \"track\", not \"song\"")
}

func TestRank_SectionMatchesLabel(t *testing.T) {
	results := Rank(fixtureCorpus(), "models", domain.DefaultSearchConfig())

	require.NotEmpty(t, results)
	assert.Equal(t, "models", results[0].Document.ID)
	assert.True(t, results[0].Matched(domain.FieldSection))
	assert.InDelta(t, 1.0, results[0].FieldScores[domain.FieldSection], 1e-9)
}

func TestRank_MissingFieldsExcluded(t *testing.T) {
	docs := []domain.Document{
		{ID: "bare", Keywords: []string{"lyrics"}},
		{ID: "full", Title: "Lyrics API", Description: "Get song lyrics.", Section: domain.SectionAPIReference},
	}

	results := Rank(docs, "lyrics", domain.DefaultSearchConfig())

	require.Equal(t, []string{"full", "bare"}, resultIDs(results))
	bare := results[1]
	assert.Equal(t, []domain.Field{domain.FieldKeywords}, bare.MatchedFields)
	assert.InDelta(t, 0.2, bare.Score, 1e-9)
}

func TestRank_UnweightedFieldIgnored(t *testing.T) {
	cfg := domain.DefaultSearchConfig()
	delete(cfg.Weights, domain.FieldSection)

	results := Rank(fixtureCorpus(), "models", cfg)

	require.NotEmpty(t, results)
	assert.False(t, results[0].Matched(domain.FieldSection))
	_, scored := results[0].FieldScores[domain.FieldSection]
	assert.False(t, scored)
}

func TestRankContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankContext(ctx, fixtureCorpus(), "song", domain.DefaultSearchConfig())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreDocument_PanicIsContained(t *testing.T) {
	doc := fixtureCorpus()[0]

	result, matched := scoreDocument(nil, &doc, domain.DefaultFieldWeights())

	assert.False(t, matched)
	assert.Empty(t, result.Document.ID)
}

func TestRank_Builtin(t *testing.T) {
	docs := builtinDocuments(t)
	cfg := domain.DefaultSearchConfig()

	tests := []struct {
		query string
		top   string
	}{
		{"lyrics", "lyrics-api"},
		{"lyrcs", "lyrics-api"},
		{"download", "download-urls"},
		{"error", "error-handling"},
		{"models", "models"},
		{"api song", "song-api"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := Rank(docs, tt.query, cfg)

			require.NotEmpty(t, results)
			assert.Equal(t, tt.top, results[0].Document.ID)
		})
	}

	assert.Empty(t, Rank(docs, "xyz123nomatch", cfg))
}

func TestNewSearchService_Validation(t *testing.T) {
	_, err := NewSearchService(nil, domain.DefaultSearchConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cfg := domain.DefaultSearchConfig()
	cfg.Threshold = 1.5
	_, err = NewSearchService(memory.NewCorpusStore(fixtureCorpus()), cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestSearchService_Search(t *testing.T) {
	svc, err := NewSearchService(memory.NewCorpusStore(fixtureCorpus()), domain.DefaultSearchConfig())
	require.NoError(t, err)

	results, err := svc.Search(context.Background(), "api", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, results, 4)

	limited, err := svc.Search(context.Background(), "api", domain.SearchOptions{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"song-api"}, resultIDs(limited))
}

func TestSearchService_Search_Cancelled(t *testing.T) {
	svc, err := NewSearchService(memory.NewCorpusStore(fixtureCorpus()), domain.DefaultSearchConfig())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Search(ctx, "song", domain.SearchOptions{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchService_Config_IsCopy(t *testing.T) {
	svc, err := NewSearchService(memory.NewCorpusStore(nil), domain.DefaultSearchConfig())
	require.NoError(t, err)

	cfg := svc.Config()
	cfg.Weights[domain.FieldTitle] = 0.9

	assert.InDelta(t, 0.4, svc.Config().Weights[domain.FieldTitle], 1e-9)
}
