package services

import (
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
)

// Ensure DashboardService implements the interface.
var _ driving.Dashboard = (*DashboardService)(nil)

// DashboardService computes analytics from the current state.
type DashboardService struct {
	store driven.StateStore
}

// NewDashboardService creates a dashboard backed by store.
func NewDashboardService(store driven.StateStore) *DashboardService {
	return &DashboardService{store: store}
}

// Stats aggregates the current snapshot.
func (d *DashboardService) Stats() domain.DashboardStats {
	return ComputeStats(d.store.Snapshot())
}

// ComputeStats aggregates s.
func ComputeStats(s state.State) domain.DashboardStats {
	stats := domain.DashboardStats{
		Documents: len(s.Documents),
		Messages:  len(s.Messages),
	}
	for _, doc := range s.Documents {
		stats.TotalPages += doc.Pages
		stats.TotalWords += doc.WordCount
		switch doc.Status {
		case domain.StatusProcessing:
			stats.Processing++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusError:
			stats.Errored++
		}
	}
	for _, a := range s.Agents {
		if a.IsActive {
			stats.ActiveAgents++
		}
	}
	for _, in := range s.Integrations {
		if in.Connected() {
			stats.ConnectedIntegrations++
		}
	}
	return stats
}
