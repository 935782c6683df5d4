package state

import (
	"time"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// Reduce applies a to s and returns the resulting state.
// When a changes nothing, s is returned as is and its Version is unchanged.
//
//nolint:gocyclo // one case per action
func Reduce(s State, a Action) State {
	var (
		next    State
		changed bool
	)

	switch a := a.(type) {
	case DocumentsAppended:
		next, changed = appendDocuments(s, a.Documents)
	case DocumentStatusChanged:
		next, changed = changeStatus(s, a.IDs, a.Status)
	case MessageAppended:
		next, changed = appendMessage(s, a.Message)
	case ReplyDelivered:
		next, changed = deliverReply(s, a.Message, a.Results)
	case ViewSelected:
		if a.View.Valid() && a.View != s.ActiveView {
			next, changed = s, true
			next.ActiveView = a.View
		}
	case AgentCreated:
		next, changed = s, true
		next.Agents = append(clone(s.Agents), a.Agent)
	case AgentToggled:
		next, changed = toggleAgent(s, a.ID)
	case AgentDeleted:
		next, changed = deleteAgent(s, a.ID)
	case IntegrationFormOpened:
		next, changed = openForm(s, a.ID)
	case IntegrationFieldSet:
		next, changed = setField(s, a.Field, a.Value)
	case IntegrationFormClosed:
		if s.Form != nil {
			next, changed = s, true
			next.Form = nil
		}
	case IntegrationConnected:
		next, changed = setConnection(s, a.ID, domain.IntegrationConnected, a.At, 1)
	case IntegrationDisconnected:
		next, changed = setConnection(s, a.ID, domain.IntegrationDisconnected, time.Time{}, 0)
	}

	if !changed {
		return s
	}
	next.Version = s.Version + 1
	return next
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// appendDocuments rejects the whole batch if any ID is already registered
// or repeated within the batch.
func appendDocuments(s State, batch []domain.Document) (State, bool) {
	if len(batch) == 0 {
		return s, false
	}
	seen := make(map[string]bool, len(s.Documents)+len(batch))
	for _, d := range s.Documents {
		seen[d.ID] = true
	}
	for _, d := range batch {
		if d.ID == "" || seen[d.ID] {
			return s, false
		}
		seen[d.ID] = true
	}

	docs := make([]domain.Document, 0, len(s.Documents)+len(batch))
	docs = append(docs, s.Documents...)
	docs = append(docs, batch...)
	s.Documents = docs
	return s, true
}

// changeStatus only moves documents out of StatusProcessing; terminal
// documents keep their status.
func changeStatus(s State, ids []string, status domain.DocumentStatus) (State, bool) {
	if !status.Terminal() || len(ids) == 0 {
		return s, false
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var docs []domain.Document
	for i, d := range s.Documents {
		if !want[d.ID] || d.Status.Terminal() {
			continue
		}
		if docs == nil {
			docs = clone(s.Documents)
		}
		docs[i].Status = status
	}
	if docs == nil {
		return s, false
	}
	s.Documents = docs
	return s, true
}

func appendMessage(s State, m domain.ChatMessage) (State, bool) {
	if m.ID == "" {
		return s, false
	}
	s.Messages = append(clone(s.Messages), m)
	if m.Sender == domain.SenderUser {
		s.AwaitingReply = append(clone(s.AwaitingReply), m.ID)
	}
	return s, true
}

func deliverReply(s State, m domain.ChatMessage, results []domain.SearchResult) (State, bool) {
	if m.ID == "" {
		return s, false
	}
	s.Messages = append(clone(s.Messages), m)

	awaiting := make([]string, 0, len(s.AwaitingReply))
	for _, id := range s.AwaitingReply {
		if id != m.ReplyTo {
			awaiting = append(awaiting, id)
		}
	}
	s.AwaitingReply = awaiting
	s.SearchResults = clone(results)
	return s, true
}

func toggleAgent(s State, id string) (State, bool) {
	for i, a := range s.Agents {
		if a.ID == id {
			agents := clone(s.Agents)
			agents[i].IsActive = !a.IsActive
			s.Agents = agents
			return s, true
		}
	}
	return s, false
}

func deleteAgent(s State, id string) (State, bool) {
	for i, a := range s.Agents {
		if a.ID == id {
			agents := make([]domain.Agent, 0, len(s.Agents)-1)
			agents = append(agents, s.Agents[:i]...)
			agents = append(agents, s.Agents[i+1:]...)
			s.Agents = agents
			return s, true
		}
	}
	return s, false
}

// openForm only opens forms for disconnected integrations.
func openForm(s State, id string) (State, bool) {
	in, ok := s.Integration(id)
	if !ok || in.Connected() {
		return s, false
	}
	s.Form = &domain.IntegrationForm{IntegrationID: id, Values: map[string]string{}}
	return s, true
}

func setField(s State, field, value string) (State, bool) {
	if s.Form == nil || field == "" {
		return s, false
	}
	values := make(map[string]string, len(s.Form.Values)+1)
	for k, v := range s.Form.Values {
		values[k] = v
	}
	values[field] = value
	s.Form = &domain.IntegrationForm{IntegrationID: s.Form.IntegrationID, Values: values}
	return s, true
}

func setConnection(
	s State, id string, status domain.IntegrationStatus, at time.Time, connections int,
) (State, bool) {
	for i, in := range s.Integrations {
		if in.ID != id {
			continue
		}
		integrations := clone(s.Integrations)
		integrations[i].Status = status
		integrations[i].ConnectedAt = at
		integrations[i].ActiveConnections = connections
		s.Integrations = integrations
		if s.Editing(id) {
			s.Form = nil
		}
		return s, true
	}
	return s, false
}
