package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
	"github.com/custodia-labs/docfind/internal/core/services"
)

var (
	searchLimit     int
	searchJSON      bool
	searchThreshold float64
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search documentation topics",
	Long: `Ranks every documentation topic against the query and prints the best
matches first. Matching is fuzzy: typos, partial words and reordered terms
still find the topic.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured limit)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", domain.DefaultMatchThreshold,
		"minimum per-field similarity, 0 to 1 (default: configured threshold)")
	rootCmd.AddCommand(searchCmd)
}

// searchResultJSON is the JSON form of one search result.
type searchResultJSON struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Path          string   `json:"path"`
	Section       string   `json:"section,omitempty"`
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matched_fields"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if err := loadCorpus(cmd.Context()); err != nil {
		return err
	}
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if searchLimit < 0 {
		return fmt.Errorf("%w: --limit must not be negative", domain.ErrInvalidInput)
	}

	search, err := searchWithOverrides(cmd)
	if err != nil {
		return err
	}

	results, err := search.Search(cmd.Context(), query, domain.SearchOptions{Limit: searchLimit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	if isTerminal(cmd.OutOrStdout()) {
		return outputSearchStyled(cmd, query, results)
	}
	return outputSearchTable(cmd, query, results)
}

// searchWithOverrides applies --threshold to the configured search.
func searchWithOverrides(cmd *cobra.Command) (driving.SearchService, error) {
	if !cmd.Flags().Changed("threshold") {
		return searchService, nil
	}
	if corpusStore == nil {
		return nil, errors.New("--threshold needs a corpus loaded by docfind")
	}

	cfg := searchService.Config()
	cfg.Threshold = searchThreshold
	search, err := services.NewSearchService(corpusStore, cfg)
	if err != nil {
		return nil, fmt.Errorf("--threshold: %w", err)
	}
	return search, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]searchResultJSON, len(results))
	for i := range results {
		doc := &results[i].Document
		fields := make([]string, len(results[i].MatchedFields))
		for j, f := range results[i].MatchedFields {
			fields[j] = f.String()
		}
		out[i] = searchResultJSON{
			ID:            doc.ID,
			Title:         doc.Title,
			Description:   doc.Description,
			Path:          doc.Path,
			Section:       doc.Section.Label(),
			Score:         results[i].Score,
			MatchedFields: fields,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, query string, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Printf("No results found for \"%s\"\n", strings.TrimSpace(query))
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		// Format: [N] Title (Score)
		doc := &results[i].Document
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, displayTitle(doc), results[i].Score)
		if section := doc.Section.Label(); section != "" {
			cmd.Printf("      %s · %s\n", doc.Path, section)
		} else {
			cmd.Printf("      %s\n", doc.Path)
		}
		if doc.Description != "" {
			cmd.Printf("      %s\n", doc.Description)
		}
		cmd.Println()
	}
	return nil
}

func outputSearchStyled(cmd *cobra.Command, query string, results []domain.SearchResult) error {
	s := styles.DefaultStyles()
	if len(results) == 0 {
		cmd.Println(s.Muted.Render(fmt.Sprintf("No results found for \"%s\"", strings.TrimSpace(query))))
		return nil
	}

	for i := range results {
		doc := &results[i].Document
		title := list.Highlight(displayTitle(doc), query, s.Normal, s.Match)
		line := fmt.Sprintf("%s %s %s", styles.SectionIcon(doc.Section), title, s.SectionBadge(doc.Section))
		cmd.Println(strings.TrimRight(line, " "))
		cmd.Println("  " + s.Muted.Render(fmt.Sprintf("%s  %.2f", doc.Path, results[i].Score)))
		if doc.Description != "" {
			cmd.Println("  " + s.Normal.Render(doc.Description))
		}
		cmd.Println()
	}
	cmd.Println(s.Muted.Render(status.ResultCount(len(results))))
	return nil
}

func displayTitle(doc *domain.Document) string {
	if doc.Title == "" {
		return doc.ID
	}
	return doc.Title
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
