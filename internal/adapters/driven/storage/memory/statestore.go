package memory

import (
	"sync"

	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore holds the current State and applies actions through
// state.Reduce. Dispatch is serialised, so timer callbacks running on
// their own goroutines never interleave a transition.
type StateStore struct {
	mu    sync.Mutex
	state state.State

	subMu  sync.RWMutex
	subs   map[int]func(state.State)
	nextID int
}

// NewStateStore creates a store holding initial.
func NewStateStore(initial state.State) *StateStore {
	return &StateStore{
		state: initial,
		subs:  make(map[int]func(state.State)),
	}
}

// Dispatch applies the action and returns the resulting snapshot.
// Subscribers are notified outside the store lock and only when the
// action changed something.
func (s *StateStore) Dispatch(a state.Action) state.State {
	s.mu.Lock()
	prev := s.state
	next := state.Reduce(prev, a)
	s.state = next
	s.mu.Unlock()

	if next.Version == prev.Version {
		logger.Debug("state: %s ignored at v%d", state.Name(a), prev.Version)
		return next
	}

	logger.Debug("state: %s -> v%d", state.Name(a), next.Version)
	s.publish(next)
	return next
}

// Snapshot returns the current state.
func (s *StateStore) Snapshot() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive every new snapshot. Notifications
// may arrive concurrently from different dispatchers; use State.Version
// to drop stale ones.
func (s *StateStore) Subscribe(fn func(state.State)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *StateStore) publish(st state.State) {
	s.subMu.RLock()
	fns := make([]func(state.State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range fns {
		fn(st)
	}
}
