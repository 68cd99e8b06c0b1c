package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	defer resetState()

	_, err := execute("search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("search", "lyrics")

	require.NoError(t, err)
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "[1] Lyrics API (")
	assert.Contains(t, out, "/api/lyrics · API Reference")
}

func TestSearchCmd_ExecutesWithLimitFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("search", "--limit", "1", "song")

	require.NoError(t, err)
	assert.Contains(t, out, "[1] ")
	assert.NotContains(t, out, "[2] ")
}

func TestSearchCmd_NegativeLimit(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("search", "--limit=-1", "song")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("search", " x ")

	require.NoError(t, err)
	assert.Equal(t, "No results found for \"x\"\n", out)
}

func TestSearchCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("search", "--json", "lyrics")
	require.NoError(t, err)

	var results []searchResultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), domain.DefaultResultLimit)
	assert.Equal(t, "lyrics-api", results[0].ID)
	assert.Equal(t, "/api/lyrics", results[0].Path)
	assert.Equal(t, "API Reference", results[0].Section)
	assert.Contains(t, results[0].MatchedFields, "title")
}

func TestSearchCmd_Threshold(t *testing.T) {
	t.Run("stricter threshold never adds results", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		loose, err := execute("search", "--json", "--limit", "21", "--threshold", "0.2", "song")
		require.NoError(t, err)
		resetFlags(rootCmd)
		strict, err := execute("search", "--json", "--limit", "21", "--threshold", "0.9", "song")
		require.NoError(t, err)

		var looseResults, strictResults []searchResultJSON
		require.NoError(t, json.Unmarshal([]byte(loose), &looseResults))
		require.NoError(t, json.Unmarshal([]byte(strict), &strictResults))
		assert.LessOrEqual(t, len(strictResults), len(looseResults))
	})

	t.Run("out of range", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		_, err := execute("search", "--threshold", "1.5", "song")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.True(t, strings.HasPrefix(err.Error(), "--threshold"))
	})

	t.Run("injected services without a store", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()
		corpusStore = nil

		_, err := execute("search", "--threshold", "0.2", "song")

		assert.Error(t, err)
	})
}
