package driving

import (
	"context"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

// SearchService provides ranked fuzzy search over the corpus.
type SearchService interface {
	// Search ranks the corpus against query.
	// An empty or too-short query yields no results and no error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Config returns the search configuration in effect.
	Config() domain.SearchConfig
}
