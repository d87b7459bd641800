package app

import (
	"context"

	"github.com/ricardofreitas/staffing/internal/domain"
)

type ScopeUseCase interface {
	Resolve(ctx context.Context, scope Scope) (*ScopeResponse, error)
}

type AllocationUseCase interface {
	Save(ctx context.Context, req SaveAllocationRequest) (*SaveAllocationResponse, error)
	Get(ctx context.Context, id string) (*domain.Allocation, []domain.MonthlyPlan, error)
	Delete(ctx context.Context, id string) error
}

type DashboardUseCase interface {
	Aggregate(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type HeatmapUseCase interface {
	ProjectTeam(ctx context.Context, req HeatmapRequest) (*HeatmapResponse, error)
	Drilldown(ctx context.Context, req DrilldownRequest) (*DrilldownResponse, error)
}

// SyncResult summarizes one pull from the external time tracker.
type SyncResult struct {
	ResourcesSynced int
	FactsUpserted   int
	Warnings        []Warning
}

type SyncUseCase interface {
	SyncTrackedHours(ctx context.Context, rng domain.PeriodRange) (*SyncResult, error)
}
