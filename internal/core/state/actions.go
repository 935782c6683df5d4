package state

import (
	"time"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// Action describes one state transition.
type Action interface {
	actionName() string
}

// Name returns a short identifier of the action for logging.
func Name(a Action) string {
	if a == nil {
		return "nil"
	}
	return a.actionName()
}

// DocumentsAppended adds a batch to the end of the registry.
type DocumentsAppended struct {
	Documents []domain.Document
}

// DocumentStatusChanged sets the status of the listed documents.
type DocumentStatusChanged struct {
	IDs    []string
	Status domain.DocumentStatus
}

// MessageAppended adds a user message and marks it as awaiting a reply.
type MessageAppended struct {
	Message domain.ChatMessage
}

// ReplyDelivered appends an AI message, clears its request from the
// awaiting list and replaces the search results, all in one transition.
type ReplyDelivered struct {
	Message domain.ChatMessage
	Results []domain.SearchResult
}

// ViewSelected changes the active view.
type ViewSelected struct {
	View domain.View
}

// AgentCreated appends an agent.
type AgentCreated struct {
	Agent domain.Agent
}

// AgentToggled flips IsActive of an agent.
type AgentToggled struct {
	ID string
}

// AgentDeleted removes an agent.
type AgentDeleted struct {
	ID string
}

// IntegrationFormOpened opens an empty form for an integration.
type IntegrationFormOpened struct {
	ID string
}

// IntegrationFieldSet records one value on the open form.
type IntegrationFieldSet struct {
	Field string
	Value string
}

// IntegrationFormClosed discards the open form.
type IntegrationFormClosed struct{}

// IntegrationConnected marks an integration connected and closes the form.
type IntegrationConnected struct {
	ID string
	At time.Time
}

// IntegrationDisconnected marks an integration disconnected and closes the form.
type IntegrationDisconnected struct {
	ID string
}

func (DocumentsAppended) actionName() string       { return "documents_appended" }
func (DocumentStatusChanged) actionName() string   { return "document_status_changed" }
func (MessageAppended) actionName() string         { return "message_appended" }
func (ReplyDelivered) actionName() string          { return "reply_delivered" }
func (ViewSelected) actionName() string            { return "view_selected" }
func (AgentCreated) actionName() string            { return "agent_created" }
func (AgentToggled) actionName() string            { return "agent_toggled" }
func (AgentDeleted) actionName() string            { return "agent_deleted" }
func (IntegrationFormOpened) actionName() string   { return "integration_form_opened" }
func (IntegrationFieldSet) actionName() string     { return "integration_field_set" }
func (IntegrationFormClosed) actionName() string   { return "integration_form_closed" }
func (IntegrationConnected) actionName() string    { return "integration_connected" }
func (IntegrationDisconnected) actionName() string { return "integration_disconnected" }
