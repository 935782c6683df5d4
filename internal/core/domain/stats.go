package domain

// DashboardStats aggregates figures for the analytics panel.
type DashboardStats struct {
	Documents  int
	Processing int
	Completed  int
	Errored    int
	TotalPages int
	TotalWords int

	Messages              int
	ActiveAgents          int
	ConnectedIntegrations int
}
