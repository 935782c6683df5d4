package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// SearchResults exposes the result set regenerated after each chat reply.
type SearchResults interface {
	// Results returns the current result set.
	Results() []domain.SearchResult
}
