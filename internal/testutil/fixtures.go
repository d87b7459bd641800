package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// Section fixtures

func NewTestSection(name string) *domain.Section {
	now := time.Now().UTC()
	return &domain.Section{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Team fixtures

func NewTestTeam(sectionID, name string) *domain.Team {
	now := time.Now().UTC()
	return &domain.Team{
		ID:        uuid.New().String(),
		Name:      name,
		SectionID: sectionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Resource fixtures

type ResourceOption func(*domain.Resource)

func WithTeamID(id string) ResourceOption {
	return func(r *domain.Resource) {
		r.TeamID = &id
	}
}

func WithDailyHours(h float64) ResourceOption {
	return func(r *domain.Resource) {
		r.DailyHours = h
	}
}

func WithInactive() ResourceOption {
	return func(r *domain.Resource) {
		r.Active = false
	}
}

func NewTestResource(name string, opts ...ResourceOption) *domain.Resource {
	now := time.Now().UTC()
	r := &domain.Resource{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      "",
		DailyHours: 8,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Project fixtures

type ProjectOption func(*domain.Project)

func WithCompanyCode(code string) ProjectOption {
	return func(p *domain.Project) {
		p.CompanyCode = code
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectInactive() ProjectOption {
	return func(p *domain.Project) {
		p.Active = false
	}
}

func NewTestProject(sectionID, name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		SectionID: sectionID,
		Status:    domain.ProjectActive,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Allocation fixtures

type AllocationOption func(*domain.Allocation)

func WithEndDate(d time.Time) AllocationOption {
	return func(a *domain.Allocation) {
		a.EndDate = &d
	}
}

func WithAllocationTeam(teamID string) AllocationOption {
	return func(a *domain.Allocation) {
		a.TeamID = &teamID
	}
}

func WithStartDate(d time.Time) AllocationOption {
	return func(a *domain.Allocation) {
		a.StartDate = d
	}
}

func WithObservation(obs string) AllocationOption {
	return func(a *domain.Allocation) {
		a.Observation = obs
	}
}

func NewTestAllocation(resourceID, projectID string, opts ...AllocationOption) *domain.Allocation {
	now := time.Now().UTC()
	a := &domain.Allocation{
		ID:         uuid.New().String(),
		ResourceID: resourceID,
		ProjectID:  projectID,
		StartDate:  now.AddDate(0, -1, 0),
		Status:     domain.AllocationPlanned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MonthlyPlan fixtures

func NewTestPlan(allocationID string, year, month int, hours float64) *domain.MonthlyPlan {
	now := time.Now().UTC()
	return &domain.MonthlyPlan{
		ID:           uuid.New().String(),
		AllocationID: allocationID,
		Period:       domain.Period{Year: year, Month: month},
		PlannedHours: hours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Fact fixtures

func NewTestTracked(resourceID, projectID string, year, month int, hours float64) *domain.TrackedHours {
	return &domain.TrackedHours{
		ResourceID:  resourceID,
		ProjectID:   projectID,
		Period:      domain.Period{Year: year, Month: month},
		ActualHours: hours,
		SyncedAt:    time.Now().UTC(),
	}
}

func NewTestCapacity(resourceID string, year, month int, hours float64) *domain.CapacityFact {
	return &domain.CapacityFact{
		ResourceID:     resourceID,
		Period:         domain.Period{Year: year, Month: month},
		AvailableHours: hours,
	}
}
