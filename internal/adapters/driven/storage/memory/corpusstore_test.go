package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

func sampleDocs() []domain.Document {
	return []domain.Document{
		{ID: "song-api", Title: "Song API", Path: "/api/song", Section: domain.SectionAPIReference},
		{ID: "download-urls", Title: "Download URLs", Path: "/api/song", Section: domain.SectionAPIReference},
		{ID: "model-song", Title: "Song Model", Path: "/models#song", Section: domain.SectionModels,
			Keywords: []string{"song", "model"}},
	}
}

func TestNewCorpusStore(t *testing.T) {
	store := NewCorpusStore(sampleDocs())

	require.NotNil(t, store)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, "song-api", store.All()[0].ID)
	assert.Equal(t, "model-song", store.All()[2].ID)
}

func TestNewCorpusStore_Empty(t *testing.T) {
	store := NewCorpusStore(nil)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.All())
}

func TestNewCorpusStore_SkipsMissingAndDuplicateIDs(t *testing.T) {
	docs := []domain.Document{
		{ID: "a", Title: "First"},
		{ID: "  ", Title: "Blank"},
		{ID: "b", Title: "Second"},
		{ID: "a", Title: "Duplicate"},
	}

	store := NewCorpusStore(docs)

	require.Equal(t, 2, store.Len())
	doc, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "First", doc.Title, "first occurrence wins")
}

func TestNewCorpusStore_CopiesInput(t *testing.T) {
	docs := sampleDocs()
	store := NewCorpusStore(docs)

	docs[0].Title = "Changed"
	docs[2].Keywords[0] = "changed"

	assert.Equal(t, "Song API", store.All()[0].Title)
	assert.Equal(t, "song", store.All()[2].Keywords[0])
}

func TestCorpusStore_Get(t *testing.T) {
	store := NewCorpusStore(sampleDocs())

	doc, err := store.Get("model-song")
	require.NoError(t, err)
	assert.Equal(t, "Song Model", doc.Title)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusStore_Get_ReturnsCopy(t *testing.T) {
	store := NewCorpusStore(sampleDocs())

	doc, err := store.Get("song-api")
	require.NoError(t, err)
	doc.Title = "Mutated"

	again, err := store.Get("song-api")
	require.NoError(t, err)
	assert.Equal(t, "Song API", again.Title)
}

func TestCorpusStore_FindByPath_FirstWins(t *testing.T) {
	store := NewCorpusStore(sampleDocs())

	doc, err := store.FindByPath("/api/song")
	require.NoError(t, err)
	assert.Equal(t, "song-api", doc.ID)

	_, err = store.FindByPath("/nowhere")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusStore_ConcurrentReads(t *testing.T) {
	store := NewCorpusStore(sampleDocs())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.All()
			_, _ = store.Get("song-api")
			_, _ = store.FindByPath("/models#song")
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, store.Len())
}
