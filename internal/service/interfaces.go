package service

import (
	"context"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
)

type SectionService interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type TeamService interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	ListBySection(ctx context.Context, sectionID string) ([]*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type ResourceService interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, filter repository.ResourceFilter) ([]*domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByCompanyCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context, filter repository.ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ScopeService interface {
	Resolve(ctx context.Context, scope contract.Scope) (*contract.ScopeResponse, error)
}

type AllocationService interface {
	Save(ctx context.Context, req contract.SaveAllocationRequest) (*contract.SaveAllocationResponse, error)
	Get(ctx context.Context, id string) (*domain.Allocation, []domain.MonthlyPlan, error)
	List(ctx context.Context, filter repository.AllocationFilter) ([]repository.AllocationDetail, error)
	Delete(ctx context.Context, id string) error
}

type DashboardService interface {
	Aggregate(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

type HeatmapService interface {
	ProjectTeam(ctx context.Context, req contract.HeatmapRequest) (*contract.HeatmapResponse, error)
	Drilldown(ctx context.Context, req contract.DrilldownRequest) (*contract.DrilldownResponse, error)
}

// TrackedHoursSource supplies actuals from the external time tracker.
type TrackedHoursSource interface {
	FetchTrackedHours(ctx context.Context, rng domain.PeriodRange) ([]*domain.TrackedHours, error)
}

type SyncService interface {
	SyncTrackedHours(ctx context.Context, rng domain.PeriodRange) (*contract.SyncResult, error)
}
