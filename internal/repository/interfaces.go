package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ricardofreitas/staffing/internal/domain"
)

// ErrNotFound is the sentinel wrapped by all repositories when a row is missing.
var ErrNotFound = errors.New("not found")

// ResourceFilter narrows resource listings for the hierarchy resolver.
// SectionID scopes through the resource's team; TeamID scopes directly.
type ResourceFilter struct {
	SectionID  string
	TeamID     string
	ActiveOnly bool
}

// ProjectFilter narrows project listings for the hierarchy resolver.
type ProjectFilter struct {
	SectionID  string
	ActiveOnly bool
}

// AllocationFilter narrows allocation listings. Overlapping restricts to
// allocations whose date range intersects [OverlapStart, OverlapEnd].
type AllocationFilter struct {
	ResourceID   string
	ProjectID    string
	TeamID       string
	OverlapStart *time.Time
	OverlapEnd   *time.Time
}

// AllocationDetail is a joined view of an allocation with its resource and
// project names, used by listings and reports.
type AllocationDetail struct {
	Allocation   domain.Allocation
	ResourceName string
	ProjectName  string
	ProjectCode  string
}

// PeriodSum is an aggregated hours total for one month.
type PeriodSum struct {
	Period domain.Period
	Hours  float64
}

// ProjectHours is a per-project hours contribution for one resource/month,
// used by drill-downs.
type ProjectHours struct {
	ProjectID   string
	ProjectName string
	Hours       float64
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	Update(ctx context.Context, s *domain.Section) error
	Delete(ctx context.Context, id string) error
}

type TeamRepo interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	ListBySection(ctx context.Context, sectionID string) ([]*domain.Team, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, f ResourceFilter) ([]*domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByCompanyCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type AllocationRepo interface {
	Create(ctx context.Context, a *domain.Allocation) error
	GetByID(ctx context.Context, id string) (*domain.Allocation, error)
	List(ctx context.Context, f AllocationFilter) ([]AllocationDetail, error)
	Update(ctx context.Context, a *domain.Allocation) error
	Delete(ctx context.Context, id string) error
}

type MonthlyPlanRepo interface {
	// Upsert writes one plan row, replacing any existing row for the same
	// (allocation, year, month) key.
	Upsert(ctx context.Context, m *domain.MonthlyPlan) error
	ListByAllocation(ctx context.Context, allocationID string) ([]*domain.MonthlyPlan, error)
	// DeleteAbsent removes rows for the allocation whose period is not in
	// keep, so a re-opened matrix never shows retracted periods.
	DeleteAbsent(ctx context.Context, allocationID string, keep []domain.Period) error
	// SumByResource totals planned hours per month across the resource's
	// allocations. projectID narrows to one project's contribution; empty
	// means all projects.
	SumByResource(ctx context.Context, resourceID string, rng domain.PeriodRange, projectID string) ([]PeriodSum, error)
	// BreakdownByProject lists per-project planned hours for one resource/month.
	BreakdownByProject(ctx context.Context, resourceID string, p domain.Period) ([]ProjectHours, error)
}

type TrackedHoursRepo interface {
	Upsert(ctx context.Context, f *domain.TrackedHours) error
	SumByResource(ctx context.Context, resourceID string, rng domain.PeriodRange, projectID string) ([]PeriodSum, error)
	BreakdownByProject(ctx context.Context, resourceID string, p domain.Period) ([]ProjectHours, error)
}

type CapacityRepo interface {
	Upsert(ctx context.Context, f *domain.CapacityFact) error
	// Get returns the explicit capacity fact for a resource/month, or
	// ErrNotFound when the month has no override.
	Get(ctx context.Context, resourceID string, p domain.Period) (*domain.CapacityFact, error)
}
