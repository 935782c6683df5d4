package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

func TestAgentManager_SeededAgents(t *testing.T) {
	h := newHarness(t)

	agents := h.agents.List()
	require.Len(t, agents, 2)
	assert.Equal(t, "Document Summarizer", agents[0].Name)
	assert.Equal(t, 94, agents[0].SuccessRate)
	assert.Equal(t, "Entity Extractor", agents[1].Name)
	assert.Equal(t, 91, agents[1].SuccessRate)
}

func TestAgentManager_Create(t *testing.T) {
	h := newHarness(t)

	agent, err := h.agents.Create("Clause Finder", "Finds clauses")

	require.NoError(t, err)
	assert.Equal(t, "Clause Finder", agent.Name)
	assert.Equal(t, "Finds clauses", agent.Description)
	assert.True(t, agent.IsActive)
	assert.Equal(t, 85, agent.SuccessRate)
	assert.Equal(t, agent, h.agents.List()[2])
}

func TestAgentManager_CreateDefaultDescription(t *testing.T) {
	h := newHarness(t)

	agent, err := h.agents.Create("X", "")

	require.NoError(t, err)
	assert.Equal(t, "Custom AI agent for document processing", agent.Description)
}

func TestAgentManager_CreateRequiresName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		h := newHarness(t)

		_, err := h.agents.Create(name, "x")

		assert.ErrorIs(t, err, domain.ErrAgentNameRequired)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Len(t, h.agents.List(), 2)
	}
}

func TestAgentManager_SuccessRateRange(t *testing.T) {
	tests := []struct {
		draw int
		want int
	}{
		{0, 85},
		{4, 89},
		{100, 94},
	}

	for _, tt := range tests {
		h := newHarness(t, withRandom(fixedRandom{value: tt.draw}))

		agent, err := h.agents.Create("A", "")

		require.NoError(t, err)
		assert.Equal(t, tt.want, agent.SuccessRate)
	}
}

func TestAgentManager_ToggleAndDelete(t *testing.T) {
	h := newHarness(t)

	h.agents.Toggle("1")
	assert.False(t, h.agents.List()[0].IsActive)
	h.agents.Toggle("1")
	assert.True(t, h.agents.List()[0].IsActive)

	h.agents.Delete("1")
	agents := h.agents.List()
	require.Len(t, agents, 1)
	assert.Equal(t, "2", agents[0].ID)
}

func TestAgentManager_MissesAreNoOps(t *testing.T) {
	h := newHarness(t)
	version := h.store.Snapshot().Version

	h.agents.Toggle("missing")
	h.agents.Delete("missing")

	assert.Equal(t, version, h.store.Snapshot().Version)
	assert.Len(t, h.agents.List(), 2)
}
