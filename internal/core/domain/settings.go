package domain

// DefaultAsyncThreshold is the corpus size above which interactive surfaces
// score queries off the input loop.
const DefaultAsyncThreshold = 2000

// Settings is the persisted application configuration.
type Settings struct {
	// Search holds matching and ranking configuration.
	Search SearchConfig

	// AsyncThreshold is the corpus size above which scoring runs off the input loop.
	AsyncThreshold int

	// CorpusPath is the corpus file to load. Empty selects the built-in corpus.
	CorpusPath string
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() *Settings {
	return &Settings{
		Search:         DefaultSearchConfig(),
		AsyncThreshold: DefaultAsyncThreshold,
	}
}
