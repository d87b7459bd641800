package contract

import "github.com/ricardofreitas/staffing/internal/app"

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest(resourceID string, year int) DashboardRequest {
	return app.NewDashboardRequest(resourceID, year)
}

type MonthlyMetricView = app.MonthlyMetricView

type ProjectBreakdownEntry = app.ProjectBreakdownEntry

type DashboardResponse = app.DashboardResponse
