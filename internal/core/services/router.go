package services

import (
	"fmt"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
)

// Ensure ViewRouter implements the interface.
var _ driving.ViewRouter = (*ViewRouter)(nil)

// ViewRouter stores the active view in the state store.
type ViewRouter struct {
	store driven.StateStore
}

// NewViewRouter creates a router backed by store.
func NewViewRouter(store driven.StateStore) *ViewRouter {
	return &ViewRouter{store: store}
}

// Select makes view the active view.
func (r *ViewRouter) Select(view domain.View) error {
	if !view.Valid() {
		return fmt.Errorf("%w: unknown view %q", domain.ErrInvalidInput, view)
	}
	r.store.Dispatch(state.ViewSelected{View: view})
	return nil
}

// Current returns the active view.
func (r *ViewRouter) Current() domain.View {
	return r.store.Snapshot().ActiveView
}
