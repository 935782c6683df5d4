package driven

import "github.com/custodia-labs/docanalyzer/internal/core/state"

// StateStore holds the single application state and applies actions to it.
// Actions are applied one at a time, in the order Dispatch is called.
type StateStore interface {
	// Dispatch applies the action and returns the resulting snapshot.
	// Subscribers are notified only when the action changed the state.
	Dispatch(action state.Action) state.State

	// Snapshot returns the current state.
	Snapshot() state.State

	// Subscribe registers fn to receive every new snapshot.
	// The returned function removes the subscription.
	Subscribe(fn func(state.State)) (unsubscribe func())
}
