package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/metrics"
)

const searchToolName = "search_docs"

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"free text describing the documentation topic to find"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default from configuration)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single ranked topic.
type SearchResultOutput struct {
	DocumentID    string   `json:"document_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Path          string   `json:"path"`
	Section       string   `json:"section,omitempty"`
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matched_fields"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: searchToolName,
		Description: "Fuzzy search over the documentation topics. Tolerates typos, " +
			"partial words and out-of-order terms. Returns topics best first.",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if input.Limit < 0 {
		err := fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
		metrics.ObserveSearch(searchToolName, 0, err)
		return nil, SearchOutput{}, err
	}

	results, err := s.ports.Search.Search(ctx, input.Query, domain.SearchOptions{Limit: input.Limit})
	metrics.ObserveSearch(searchToolName, len(results), err)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		doc := &results[i].Document
		fields := make([]string, len(results[i].MatchedFields))
		for j, f := range results[i].MatchedFields {
			fields[j] = f.String()
		}

		output.Results[i] = SearchResultOutput{
			DocumentID:    doc.ID,
			Title:         doc.Title,
			Description:   doc.Description,
			Path:          doc.Path,
			Section:       doc.Section.Label(),
			Score:         results[i].Score,
			MatchedFields: fields,
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: summary(output)}},
	}, output, nil
}

// summary renders results as plain text for clients that ignore structured output.
func summary(output SearchOutput) string {
	if output.Count == 0 {
		return "No results found."
	}
	var b strings.Builder
	for i, r := range output.Results {
		fmt.Fprintf(&b, "%d. %s (%s) %.2f\n", i+1, r.Title, r.Path, r.Score)
	}
	return b.String()
}
