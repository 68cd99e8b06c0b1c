// Package domain defines the core business entities for docfind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A documentation topic with its navigation path
//   - Section: The closed set of documentation sections
//   - SearchConfig: Field weights, match threshold and result limit
//   - SearchResult: A ranked document with per-field scores
//   - SessionState: The transient state of one search interaction
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
