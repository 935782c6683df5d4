// Package domain defines the core business entities for docanalyzer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An uploaded artifact tracked by the registry
//   - ChatMessage: A single turn of the question/answer conversation
//   - SearchResult: A synthesised hit shown on the search panel
//   - Agent: A user-defined automation with a simulated success rate
//   - Integration: A simulated connection to an external service
//   - View: The top-level panel currently selected for display
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
