// Package state holds the application state container model: an immutable
// State snapshot, the Action types that describe every transition, and the
// pure Reduce function that applies them.
//
// Reduce never mutates its input. Slices and maps that change are copied,
// so a State handed to a subscriber stays valid after later dispatches.
package state

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// State is a snapshot of everything the rendering layer can observe.
type State struct {
	// Version increases by one on every applied action.
	Version uint64

	// Documents is the registry in insertion order.
	Documents []domain.Document

	// Messages is the chat history in append order.
	Messages []domain.ChatMessage

	// AwaitingReply lists user message IDs whose AI reply is still pending.
	AwaitingReply []string

	// SearchResults is the most recently synthesised result set.
	SearchResults []domain.SearchResult

	// Agents is the agent list.
	Agents []domain.Agent

	// Integrations is the integration catalogue.
	Integrations []domain.Integration

	// Form is the open integration form, nil while none is being edited.
	Form *domain.IntegrationForm

	// ActiveView is the selected top-level panel.
	ActiveView domain.View
}

// New returns the initial state with the given seed data.
func New(agents []domain.Agent, integrations []domain.Integration) State {
	return State{
		Agents:       append([]domain.Agent(nil), agents...),
		Integrations: append([]domain.Integration(nil), integrations...),
		ActiveView:   domain.DefaultView,
	}
}

// Document returns the document with the given ID.
func (s State) Document(id string) (domain.Document, bool) {
	for _, d := range s.Documents {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Document{}, false
}

// Agent returns the agent with the given ID.
func (s State) Agent(id string) (domain.Agent, bool) {
	for _, a := range s.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Agent{}, false
}

// Integration returns the integration with the given ID.
func (s State) Integration(id string) (domain.Integration, bool) {
	for _, in := range s.Integrations {
		if in.ID == id {
			return in, true
		}
	}
	return domain.Integration{}, false
}

// Editing reports whether the form for the given integration is open.
func (s State) Editing(id string) bool {
	return s.Form != nil && s.Form.IntegrationID == id
}

// AllCompleted reports whether the registry is non-empty and every
// document has reached StatusCompleted.
func (s State) AllCompleted() bool {
	if len(s.Documents) == 0 {
		return false
	}
	for _, d := range s.Documents {
		if d.Status != domain.StatusCompleted {
			return false
		}
	}
	return true
}
