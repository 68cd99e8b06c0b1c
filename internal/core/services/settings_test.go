package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docfind/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsService_Get_Overrides(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"search.threshold":          0.5,
		"search.min_query_length":   int64(3),
		"search.limit":              int64(5),
		"search.async_threshold":    int64(100),
		"search.weights.title":      int64(1),
		"search.weights.section":    0.05,
		"corpus.path":               "/srv/docs.db",
		"search.weights.unknownish": 0.9,
	})
	svc := NewSettingsService(store)

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.InDelta(t, 0.5, settings.Search.Threshold, 1e-9)
	assert.Equal(t, 3, settings.Search.MinQueryLength)
	assert.Equal(t, 5, settings.Search.Limit)
	assert.Equal(t, 100, settings.AsyncThreshold)
	assert.Equal(t, "/srv/docs.db", settings.CorpusPath)
	assert.InDelta(t, 1.0, settings.Search.Weights[domain.FieldTitle], 1e-9)
	assert.InDelta(t, 0.3, settings.Search.Weights[domain.FieldDescription], 1e-9)
	assert.InDelta(t, 0.05, settings.Search.Weights[domain.FieldSection], 1e-9)
	assert.Len(t, settings.Search.Weights, 4)
}

func TestSettingsService_Get_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"search.threshold", 1.5},
		{"search.limit", int64(0)},
		{"search.min_query_length", int64(-1)},
		{"search.weights.keywords", 0.0},
		{"search.weights.title", "heavy"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			svc := NewSettingsService(memory.NewConfigStore(map[string]any{tt.key: tt.value}))

			_, err := svc.Get()

			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), ":memory:")
		})
	}
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	store := memory.NewConfigStore(nil)
	svc := NewSettingsService(store)

	settings := domain.DefaultSettings()
	settings.Search.Threshold = 0.6
	settings.Search.Limit = 3
	settings.Search.Weights[domain.FieldKeywords] = 0.5
	settings.CorpusPath = "docs.toml"
	require.NoError(t, svc.Save(settings))

	assert.InDelta(t, 0.6, store.GetFloat("search.threshold"), 1e-9)
	assert.InDelta(t, 0.5, store.GetFloat("search.weights.keywords"), 1e-9)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore(nil)
	svc := NewSettingsService(store)

	assert.ErrorIs(t, svc.Save(nil), domain.ErrInvalidInput)

	settings := domain.DefaultSettings()
	settings.Search.Limit = 0
	assert.ErrorIs(t, svc.Save(settings), domain.ErrInvalidConfig)

	_, ok := store.Get("search.limit")
	assert.False(t, ok, "nothing is written for invalid settings")
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore(nil)
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set("search.threshold", "0.55"))
	require.NoError(t, svc.Set("search.limit", " 4 "))
	require.NoError(t, svc.Set("search.weights.section", "0.2"))
	require.NoError(t, svc.Set("corpus.path", "docs.db"))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.InDelta(t, 0.55, settings.Search.Threshold, 1e-9)
	assert.Equal(t, 4, settings.Search.Limit)
	assert.InDelta(t, 0.2, settings.Search.Weights[domain.FieldSection], 1e-9)
	assert.Equal(t, "docs.db", settings.CorpusPath)
	assert.Equal(t, ":memory:", svc.Path())
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"unknown key", "search.colour", "red", domain.ErrInvalidInput},
		{"unknown field", "search.weights.body", "0.5", domain.ErrInvalidInput},
		{"not a number", "search.threshold", "high", domain.ErrInvalidInput},
		{"not an integer", "search.limit", "2.5", domain.ErrInvalidInput},
		{"out of range", "search.threshold", "2", domain.ErrInvalidConfig},
		{"zero weight", "search.weights.title", "0", domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore(nil)
			svc := NewSettingsService(store)

			err := svc.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, tt.want)
			_, written := store.Get(tt.key)
			assert.False(t, written)
		})
	}
}

func TestSettingKeys(t *testing.T) {
	keys := SettingKeys()

	assert.Equal(t, "search.threshold", keys[0])
	assert.Contains(t, keys, "search.weights.keywords")
	assert.Equal(t, "corpus.path", keys[len(keys)-1])
	assert.Len(t, keys, 9)
}

func TestSettingValue(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.CorpusPath = "/srv/docs.toml"

	tests := []struct {
		key  string
		want string
	}{
		{"search.threshold", "0.4"},
		{"search.min_query_length", "2"},
		{"search.limit", "8"},
		{"search.async_threshold", "2000"},
		{"search.weights.title", "0.4"},
		{"search.weights.section", "0.1"},
		{"corpus.path", "/srv/docs.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := SettingValue(settings, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("every key is formattable", func(t *testing.T) {
		for _, key := range SettingKeys() {
			_, err := SettingValue(settings, key)
			assert.NoError(t, err, key)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := SettingValue(settings, "search.nope")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("round trips through Set", func(t *testing.T) {
		svc := NewSettingsService(memory.NewConfigStore(nil))
		require.NoError(t, svc.Set("search.weights.keywords", "0.25"))

		got, err := svc.Get()
		require.NoError(t, err)
		value, err := SettingValue(got, "search.weights.keywords")
		require.NoError(t, err)
		assert.Equal(t, "0.25", value)
	})
}
