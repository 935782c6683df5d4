package services

import (
	"slices"
	"strings"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// Ensure AgentManager implements the interface.
var _ driving.AgentManager = (*AgentManager)(nil)

// Simulated success rate range, inclusive.
const (
	minSuccessRate = 85
	maxSuccessRate = 94
)

// AgentManager creates, toggles and deletes agents.
type AgentManager struct {
	store driven.StateStore
	ids   driven.IDGenerator
	rnd   driven.Random
}

// NewAgentManager creates an agent manager.
func NewAgentManager(store driven.StateStore, ids driven.IDGenerator, rnd driven.Random) *AgentManager {
	return &AgentManager{store: store, ids: ids, rnd: rnd}
}

// Create adds a new active agent with a simulated success rate.
func (m *AgentManager) Create(name, description string) (domain.Agent, error) {
	if !present(name) {
		return domain.Agent{}, domain.ErrAgentNameRequired
	}
	if !present(description) {
		description = domain.DefaultAgentDescription
	}

	agent := domain.Agent{
		ID:          m.ids.NewID(),
		Name:        strings.TrimSpace(name),
		Description: description,
		IsActive:    true,
		SuccessRate: m.rnd.IntN(maxSuccessRate-minSuccessRate+1) + minSuccessRate,
	}
	m.store.Dispatch(state.AgentCreated{Agent: agent})
	logger.Debug("agents: created %q (%s) at %d%%", agent.Name, agent.ID, agent.SuccessRate)
	return agent, nil
}

// Toggle flips the agent's active flag.
func (m *AgentManager) Toggle(id string) {
	m.store.Dispatch(state.AgentToggled{ID: id})
}

// Delete removes the agent.
func (m *AgentManager) Delete(id string) {
	m.store.Dispatch(state.AgentDeleted{ID: id})
}

// List returns the agents in creation order.
func (m *AgentManager) List() []domain.Agent {
	return slices.Clone(m.store.Snapshot().Agents)
}
