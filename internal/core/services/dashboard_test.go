package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

func TestDashboardService_InitialStats(t *testing.T) {
	h := newHarness(t)

	stats := h.dashboard.Stats()

	assert.Equal(t, domain.DashboardStats{ActiveAgents: 2, ConnectedIntegrations: 2}, stats)
}

func TestDashboardService_Stats(t *testing.T) {
	h := newHarness(t, withRandom(fixedRandom{value: 3}))

	_, err := h.upload.Submit([]domain.FileDescriptor{file("a.pdf"), file("b.pdf")})
	require.NoError(t, err)
	require.NoError(t, h.registry.Append([]domain.Document{{ID: "bad", Status: domain.StatusProcessing, Pages: 1}}))
	require.NoError(t, h.registry.UpdateStatus("bad", domain.StatusError))
	h.clock.Advance(2 * time.Second)
	_, err = h.chat.Send("hi")
	require.NoError(t, err)
	h.agents.Toggle("2")

	stats := h.dashboard.Stats()

	assert.Equal(t, 3, stats.Documents)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Errored)
	assert.Zero(t, stats.Processing)
	assert.Equal(t, 8+8+1, stats.TotalPages)
	assert.Equal(t, 2*1003, stats.TotalWords)
	assert.Equal(t, 1, stats.Messages)
	assert.Equal(t, 1, stats.ActiveAgents)
	assert.Equal(t, 2, stats.ConnectedIntegrations)
}
