package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Highlight renders text with base, drawing the characters that query
// matches as an in-order subsequence with match. Whitespace in the query is
// ignored. Text that does not contain the query as a subsequence renders
// with base only; typo-tolerant matches are not highlighted.
func Highlight(text, query string, base, match lipgloss.Style) string {
	indexes := MatchedIndexes(text, query)
	if len(indexes) == 0 {
		return base.Render(text)
	}

	marked := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		marked[i] = true
	}

	var b strings.Builder
	var run strings.Builder
	runMatched := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runMatched {
			b.WriteString(match.Render(run.String()))
		} else {
			b.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}

	for i, r := range text {
		if marked[i] != runMatched {
			flush()
			runMatched = marked[i]
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

// MatchedIndexes returns the byte offsets of text highlighted for query.
func MatchedIndexes(text, query string) []int {
	pattern := strings.Join(strings.Fields(query), "")
	if pattern == "" || text == "" {
		return nil
	}
	matches := fuzzy.Find(pattern, []string{text})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
