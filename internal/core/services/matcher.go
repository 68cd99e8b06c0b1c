package services

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

// Matcher scores how well a query approximately matches a piece of field text.
//
// The score is 1 - d/max(len(query), len(window)), where d is the optimal
// string alignment distance (insertions, deletions, substitutions and
// adjacent transpositions each cost 1) between the query and the window of
// the field that aligns best with it. The window may start and end anywhere
// in the field, so the position of a hit does not affect its score.
//
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	threshold      float64
	minQueryLength int
}

// NewMatcher creates a matcher using the threshold and minimum query length of cfg.
func NewMatcher(cfg domain.SearchConfig) *Matcher {
	return &Matcher{
		threshold:      cfg.Threshold,
		minQueryLength: cfg.MinQueryLength,
	}
}

// Match scores query against fieldText.
// It returns false when the query is too short, the field is empty or
// malformed, or the similarity is below the threshold.
func (m *Matcher) Match(fieldText, query string) (float64, bool) {
	p, ok := m.compile(query)
	if !ok {
		return 0, false
	}
	return p.score(fieldText)
}

// pattern is a query prepared for repeated scoring against many fields.
type pattern struct {
	whole     []rune
	terms     [][]rune
	threshold float64
}

// compile lower-cases and splits query once per search.
// It returns false when the query is shorter than the minimum length.
func (m *Matcher) compile(query string) (*pattern, bool) {
	query = strings.TrimSpace(query)
	if !utf8.ValidString(query) || significantLen(query) < m.minQueryLength {
		return nil, false
	}

	lower := strings.ToLower(query)
	p := &pattern{
		whole:     []rune(lower),
		threshold: m.threshold,
	}

	fields := strings.Fields(lower)
	if len(fields) > 1 {
		for _, f := range fields {
			if utf8.RuneCountInString(f) < m.minQueryLength {
				continue
			}
			p.terms = append(p.terms, []rune(f))
		}
	}
	return p, true
}

// score returns the similarity of the pattern to text.
func (p *pattern) score(text string) (float64, bool) {
	if text == "" || !utf8.ValidString(text) {
		return 0, false
	}
	target := []rune(strings.ToLower(text))

	best := windowSimilarity(p.whole, target, p.threshold)

	// Terms typed out of order still match when each term finds its own window.
	if len(p.terms) > 1 {
		var sum float64
		for _, term := range p.terms {
			sum += windowSimilarity(term, target, p.threshold)
		}
		if mean := sum / float64(len(p.terms)); mean > best {
			best = mean
		}
	}

	if best < p.threshold || best <= 0 {
		return 0, false
	}
	return best, true
}

// significantLen counts the non-whitespace runes of s.
func significantLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// maxDistance is the largest alignment distance that can still reach threshold.
// A window is at most len(query)+d runes long, so d <= (1-t)*(q+d) gives
// d <= q*(1-t)/t. No alignment ever needs more than q edits.
func maxDistance(queryLen int, threshold float64) int {
	if threshold <= 0 {
		return queryLen
	}
	bound := int(math.Floor(float64(queryLen) * (1 - threshold) / threshold))
	if bound > queryLen {
		return queryLen
	}
	return bound
}

// cell is one entry of the alignment table: the distance of the best
// alignment ending here and the text offset where its window starts.
type cell struct {
	dist  int
	start int
}

// better reports whether a is preferred over b. Lower distance wins; on a tie
// the longer window wins because it yields the higher normalised similarity.
func better(a, b cell) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.start < b.start
}

// windowSimilarity returns the best similarity of query against any window
// of text, or 0 when no window is within the distance bound.
//
// It runs a free-start, free-end alignment (rows are query runes, columns are
// text runes) keeping three rows for the transposition lookback.
func windowSimilarity(query, text []rune, threshold float64) float64 {
	q, n := len(query), len(text)
	if q == 0 || n == 0 {
		return 0
	}
	bound := maxDistance(q, threshold)

	prev2 := make([]cell, n+1)
	prev := make([]cell, n+1)
	cur := make([]cell, n+1)

	// Row 0: an empty query prefix aligns with an empty window at any offset.
	for j := 0; j <= n; j++ {
		prev[j] = cell{dist: 0, start: j}
	}

	for i := 1; i <= q; i++ {
		cur[0] = cell{dist: i, start: 0}
		rowMin := cur[0].dist

		for j := 1; j <= n; j++ {
			cost := 1
			if query[i-1] == text[j-1] {
				cost = 0
			}

			c := cell{dist: prev[j-1].dist + cost, start: prev[j-1].start}
			if del := (cell{dist: prev[j].dist + 1, start: prev[j].start}); better(del, c) {
				c = del
			}
			if ins := (cell{dist: cur[j-1].dist + 1, start: cur[j-1].start}); better(ins, c) {
				c = ins
			}
			if i > 1 && j > 1 &&
				query[i-1] == text[j-2] && query[i-2] == text[j-1] && query[i-1] != query[i-2] {
				if tr := (cell{dist: prev2[j-2].dist + 1, start: prev2[j-2].start}); better(tr, c) {
					c = tr
				}
			}

			cur[j] = c
			if c.dist < rowMin {
				rowMin = c.dist
			}
		}

		// Every alignment of the full query passes through this row.
		if rowMin > bound {
			return 0
		}

		prev2, prev, cur = prev, cur, prev2
	}

	best := 0.0
	for j := 1; j <= n; j++ {
		c := prev[j]
		if c.dist > bound {
			continue
		}
		window := j - c.start
		denom := q
		if window > denom {
			denom = window
		}
		if sim := 1 - float64(c.dist)/float64(denom); sim > best {
			best = sim
		}
	}
	return best
}
