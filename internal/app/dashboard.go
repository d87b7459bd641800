package app

import (
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/metrics"
)

// DashboardRequest asks for the monthly availability view of a single
// resource. ProjectID optionally narrows planned and actual hours to
// one project; capacity is always resource-level.
type DashboardRequest struct {
	ResourceID string
	Range      domain.PeriodRange
	ProjectID  string
}

// NewDashboardRequest defaults the range to a full calendar year.
func NewDashboardRequest(resourceID string, year int) DashboardRequest {
	return DashboardRequest{
		ResourceID: resourceID,
		Range: domain.PeriodRange{
			From: domain.Period{Year: year, Month: 1},
			To:   domain.Period{Year: year, Month: 12},
		},
	}
}

// MonthlyMetricView is one dashboard row with its presentation level
// already classified.
type MonthlyMetricView struct {
	metrics.MonthlyMetric
	Level metrics.UtilizationLevel
}

// ProjectBreakdownEntry is one project's contribution to a month.
type ProjectBreakdownEntry struct {
	ProjectID   string
	ProjectName string
	Hours       float64
}

type DashboardResponse struct {
	ResourceID   string
	ResourceName string
	Months       []MonthlyMetricView
	Warnings     []Warning
}
