package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// Dashboard computes the analytics panel figures.
type Dashboard interface {
	Stats() domain.DashboardStats
}
