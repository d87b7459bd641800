package service

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/metrics"
	"github.com/ricardofreitas/staffing/internal/repository"
)

type heatmapService struct {
	teams     repository.TeamRepo
	resources repository.ResourceRepo
	plans     repository.MonthlyPlanRepo
	tracked   repository.TrackedHoursRepo
	capacity  repository.CapacityRepo
}

func NewHeatmapService(
	teams repository.TeamRepo,
	resources repository.ResourceRepo,
	plans repository.MonthlyPlanRepo,
	tracked repository.TrackedHoursRepo,
	capacity repository.CapacityRepo,
) HeatmapService {
	return &heatmapService{
		teams:     teams,
		resources: resources,
		plans:     plans,
		tracked:   tracked,
		capacity:  capacity,
	}
}

// ProjectTeam builds the utilization grid for every resource currently
// on the team. The grid is rectangular: a resource-month without any
// allocation still yields a cell with zero utilization.
func (s *heatmapService) ProjectTeam(ctx context.Context, req contract.HeatmapRequest) (*contract.HeatmapResponse, error) {
	if err := req.Range.Validate(); err != nil {
		return nil, err
	}
	team, err := s.teams.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	members, err := s.resources.List(ctx, repository.ResourceFilter{TeamID: req.TeamID, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	resp := &contract.HeatmapResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
		Periods:  req.Range.Periods(),
		Rows:     make([]contract.HeatmapRow, 0, len(members)),
	}
	for _, res := range members {
		row, err := s.resourceRow(ctx, res, req.Range)
		if err != nil {
			return nil, err
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

func (s *heatmapService) resourceRow(ctx context.Context, res *domain.Resource, rng domain.PeriodRange) (contract.HeatmapRow, error) {
	sums, err := s.plans.SumByResource(ctx, res.ID, rng, "")
	if err != nil {
		return contract.HeatmapRow{}, fmt.Errorf("heatmap row for %s: %w", res.ID, err)
	}
	planned := sumsByPeriod(sums)

	row := contract.HeatmapRow{ResourceID: res.ID, ResourceName: res.Name}
	for _, p := range rng.Periods() {
		available := domain.DefaultCapacity(res, p)
		if fact, err := s.capacity.Get(ctx, res.ID, p); err == nil {
			available = fact.AvailableHours
		}
		m := metrics.ComputeMonthly(metrics.MonthlyInput{
			Period:         p,
			AvailableHours: available,
			PlannedHours:   planned[p],
		})
		row.Cells = append(row.Cells, contract.HeatmapCell{
			Period:         p,
			UtilizationPct: m.UtilizationPlannedPct,
			Level:          metrics.ClassifyUtilization(m.UtilizationPlannedPct),
		})
	}
	return row, nil
}

// Drilldown returns the project breakdown behind one grid cell, limited
// to positive contributions of the selected metric kind.
func (s *heatmapService) Drilldown(ctx context.Context, req contract.DrilldownRequest) (*contract.DrilldownResponse, error) {
	if err := req.Period.Validate(); err != nil {
		return nil, err
	}

	var (
		entries []repository.ProjectHours
		err     error
	)
	switch req.Kind {
	case domain.MetricActual:
		entries, err = s.tracked.BreakdownByProject(ctx, req.ResourceID, req.Period)
	case domain.MetricPlanned, "":
		entries, err = s.plans.BreakdownByProject(ctx, req.ResourceID, req.Period)
	default:
		return nil, fmt.Errorf("unknown metric kind %q", req.Kind)
	}
	if err != nil {
		return nil, err
	}

	resp := &contract.DrilldownResponse{
		ResourceID: req.ResourceID,
		Period:     req.Period,
		Kind:       req.Kind,
	}
	if resp.Kind == "" {
		resp.Kind = domain.MetricPlanned
	}
	for _, e := range entries {
		if e.Hours <= 0 {
			continue
		}
		resp.Entries = append(resp.Entries, contract.ProjectBreakdownEntry{
			ProjectID:   e.ProjectID,
			ProjectName: e.ProjectName,
			Hours:       e.Hours,
		})
	}
	return resp, nil
}
