// Package metrics holds the Prometheus collectors exposed by the HTTP MCP server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and corpus metrics.
var (
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docfind",
			Name:      "mcp_tool_calls_total",
			Help:      "Total number of MCP tool calls",
		},
		[]string{"tool", "status"},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docfind",
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	CorpusDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docfind",
			Name:      "corpus_documents",
			Help:      "Number of documents in the loaded corpus",
		},
	)
)

func init() {
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(CorpusDocuments)
}

// ObserveSearch records one search tool call.
func ObserveSearch(tool string, results int, err error) {
	if err != nil {
		ToolCallsTotal.WithLabelValues(tool, "error").Inc()
		return
	}
	ToolCallsTotal.WithLabelValues(tool, "ok").Inc()
	SearchResults.Observe(float64(results))
}
