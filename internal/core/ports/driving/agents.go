package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// AgentManager manages the agent list.
type AgentManager interface {
	// Create adds an active agent. Returns domain.ErrAgentNameRequired
	// when name is blank.
	Create(name, description string) (domain.Agent, error)

	// Toggle flips IsActive. Unknown IDs are ignored.
	Toggle(id string)

	// Delete removes the agent. Unknown IDs are ignored.
	Delete(id string)

	// List returns the agents in creation order.
	List() []domain.Agent
}
