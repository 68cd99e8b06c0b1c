// Package mcp provides an MCP (Model Context Protocol) server adapter for docfind.
// It lets AI assistants search the documentation corpus and read its topics.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
