package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// ViewRouter holds the single active view selector.
type ViewRouter interface {
	// Select switches to view. Any view is reachable from any view.
	// Returns domain.ErrInvalidInput for a value outside the enumeration.
	Select(view domain.View) error

	// Current returns the active view.
	Current() domain.View
}
