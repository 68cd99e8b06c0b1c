package domain

import "fmt"

// Field names a weighted, searchable attribute of a Document.
type Field int

const (
	// FieldTitle is the document title.
	FieldTitle Field = iota
	// FieldDescription is the document description.
	FieldDescription
	// FieldKeywords is the keyword list; each keyword is matched on its own.
	FieldKeywords
	// FieldSection is the section label text.
	FieldSection
)

// Fields returns all searchable fields in scoring order.
func Fields() []Field {
	return []Field{FieldTitle, FieldDescription, FieldKeywords, FieldSection}
}

// String returns the configuration name of the field.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldDescription:
		return "description"
	case FieldKeywords:
		return "keywords"
	case FieldSection:
		return "section"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so fields render by name in JSON.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseField parses a field from its configuration name.
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, name)
}

// FieldWeights maps a field to its weight in (0,1].
// Weights need not sum to 1. Fields without a weight are not searched.
type FieldWeights map[Field]float64

// DefaultFieldWeights returns the default field weights.
func DefaultFieldWeights() FieldWeights {
	return FieldWeights{
		FieldTitle:       0.4,
		FieldDescription: 0.3,
		FieldKeywords:    0.2,
		FieldSection:     0.1,
	}
}

// Clone returns a copy of the weights.
func (w FieldWeights) Clone() FieldWeights {
	out := make(FieldWeights, len(w))
	for f, v := range w {
		out[f] = v
	}
	return out
}

// Default search configuration values.
const (
	DefaultMatchThreshold = 0.4
	DefaultMinQueryLength = 2
	DefaultResultLimit    = 8
)

// SearchConfig holds the fixed matching and ranking configuration.
type SearchConfig struct {
	// Weights is the per-field weight applied to field scores.
	Weights FieldWeights

	// Threshold is the minimum per-field similarity counted as a match.
	Threshold float64

	// MinQueryLength is the minimum trimmed query length, in runes.
	MinQueryLength int

	// Limit is the maximum number of results returned.
	Limit int
}

// DefaultSearchConfig returns the documented defaults.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Weights:        DefaultFieldWeights(),
		Threshold:      DefaultMatchThreshold,
		MinQueryLength: DefaultMinQueryLength,
		Limit:          DefaultResultLimit,
	}
}

// Validate checks the configuration is usable.
func (c SearchConfig) Validate() error {
	if len(c.Weights) == 0 {
		return fmt.Errorf("%w: no field weights", ErrInvalidConfig)
	}
	for f, w := range c.Weights {
		if w <= 0 || w > 1 {
			return fmt.Errorf("%w: weight for %s must be in (0,1], got %v", ErrInvalidConfig, f, w)
		}
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be in [0,1], got %v", ErrInvalidConfig, c.Threshold)
	}
	if c.MinQueryLength < 1 {
		return fmt.Errorf("%w: min query length must be at least 1, got %d", ErrInvalidConfig, c.MinQueryLength)
	}
	if c.Limit < 1 {
		return fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidConfig, c.Limit)
	}
	return nil
}

// SearchOptions adjusts a single search call.
type SearchOptions struct {
	// Limit overrides the configured result limit when positive.
	Limit int
}

// SearchResult is one ranked document for a query.
// Results are recomputed on every query change and never persisted.
type SearchResult struct {
	// Document is the matched document.
	Document Document

	// Score is the composite relevance score.
	Score float64

	// MatchedFields lists the fields that met the threshold, in scoring order.
	MatchedFields []Field

	// FieldScores holds the raw similarity of each matched field.
	FieldScores map[Field]float64
}

// Matched reports whether field contributed to the score.
func (r *SearchResult) Matched(field Field) bool {
	_, ok := r.FieldScores[field]
	return ok
}
