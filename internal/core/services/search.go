package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
	"github.com/custodia-labs/docfind/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks the loaded corpus against free-text queries.
type SearchService struct {
	corpus driven.CorpusStore
	config domain.SearchConfig
}

// NewSearchService creates a new search service.
// The configuration is validated once here; searches never fail on config.
func NewSearchService(corpus driven.CorpusStore, cfg domain.SearchConfig) (*SearchService, error) {
	if corpus == nil {
		return nil, fmt.Errorf("%w: corpus store is required", domain.ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Weights = cfg.Weights.Clone()
	return &SearchService{corpus: corpus, config: cfg}, nil
}

// Config returns the search configuration in effect.
func (s *SearchService) Config() domain.SearchConfig {
	cfg := s.config
	cfg.Weights = cfg.Weights.Clone()
	return cfg
}

// Search ranks every document in the corpus against query.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	cfg := s.config
	if opts.Limit > 0 {
		cfg.Limit = opts.Limit
	}

	results, err := RankContext(ctx, s.corpus.All(), query, cfg)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}

// Rank scores every document of corpus against query and returns at most
// cfg.Limit results, best first. Equal scores keep corpus order.
// Documents with no matching field are left out.
func Rank(corpus []domain.Document, query string, cfg domain.SearchConfig) []domain.SearchResult {
	// A background context never cancels, so the error is always nil.
	results, _ := RankContext(context.Background(), corpus, query, cfg)
	return results
}

// RankContext is Rank with cancellation checked between documents.
func RankContext(
	ctx context.Context, corpus []domain.Document, query string, cfg domain.SearchConfig,
) ([]domain.SearchResult, error) {
	logger.Section("Rank")
	query = strings.TrimSpace(query)
	logger.Debug("Query: %q, corpus: %d documents", query, len(corpus))

	matcher := NewMatcher(cfg)
	p, ok := matcher.compile(query)
	if !ok {
		logger.Debug("Query below minimum length %d, returning no results", cfg.MinQueryLength)
		return []domain.SearchResult{}, nil
	}

	results := make([]domain.SearchResult, 0, cfg.Limit)
	for i := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, matched := scoreDocument(p, &corpus[i], cfg.Weights)
		if !matched {
			continue
		}
		results = append(results, result)
	}

	// Stable sort keeps corpus order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	logger.Debug("Matched: %d documents", len(results))
	if len(results) > cfg.Limit {
		results = results[:cfg.Limit]
	}
	logger.Info("Final results: %d", len(results))

	return results, nil
}

// scoreDocument computes the composite score of one document.
// A panic while scoring is contained to this document.
func scoreDocument(p *pattern, doc *domain.Document, weights domain.FieldWeights) (result domain.SearchResult, matched bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Skipping document %q: scoring failed: %v", doc.ID, r)
			result, matched = domain.SearchResult{}, false
		}
	}()

	var composite float64
	var fields []domain.Field
	var scores map[domain.Field]float64

	for _, field := range domain.Fields() {
		weight, ok := weights[field]
		if !ok {
			continue
		}

		score, ok := scoreField(p, doc, field)
		if !ok {
			continue
		}

		if scores == nil {
			scores = make(map[domain.Field]float64, len(weights))
		}
		scores[field] = score
		fields = append(fields, field)
		composite += score * weight
	}

	if len(fields) == 0 {
		return domain.SearchResult{}, false
	}

	return domain.SearchResult{
		Document:      *doc,
		Score:         composite,
		MatchedFields: fields,
		FieldScores:   scores,
	}, true
}

// scoreField scores a single field of doc.
// Each keyword is matched on its own; the best keyword stands for the field.
func scoreField(p *pattern, doc *domain.Document, field domain.Field) (float64, bool) {
	if field == domain.FieldKeywords {
		best, found := 0.0, false
		for _, kw := range doc.Keywords {
			if score, ok := p.score(kw); ok && score > best {
				best, found = score, true
			}
		}
		return best, found
	}

	text, ok := doc.Text(field)
	if !ok {
		return 0, false
	}
	return p.score(text)
}
