package service

import (
	"context"
	"testing"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/metrics"
	"github.com/ricardofreitas/staffing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmapProjectTeam_GridStaysRectangular(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	_, teamID, resID, projID := orgFixture(t, r)

	idle := testutil.NewTestResource("Carla Dias", testutil.WithTeamID(teamID))
	require.NoError(t, r.resources.Create(ctx, idle))

	alloc := seedAllocation(t, r, resID, projID)
	require.NoError(t, r.capacity.Upsert(ctx, testutil.NewTestCapacity(resID, 2025, 3, 160)))
	require.NoError(t, r.plans.Upsert(ctx, testutil.NewTestPlan(alloc.ID, 2025, 3, 160)))

	svc := NewHeatmapService(r.teams, r.resources, r.plans, r.tracked, r.capacity)

	resp, err := svc.ProjectTeam(ctx, contract.HeatmapRequest{
		TeamID: teamID,
		Range: domain.PeriodRange{
			From: domain.Period{Year: 2025, Month: 1},
			To:   domain.Period{Year: 2025, Month: 4},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Periods, 4)
	require.Len(t, resp.Rows, 2, "every team member gets a row")

	for _, row := range resp.Rows {
		assert.Len(t, row.Cells, 4, "resource %s: every month in range gets a cell", row.ResourceName)
	}

	var idleRow, busyRow *contract.HeatmapRow
	for i := range resp.Rows {
		switch resp.Rows[i].ResourceID {
		case idle.ID:
			idleRow = &resp.Rows[i]
		case resID:
			busyRow = &resp.Rows[i]
		}
	}
	require.NotNil(t, idleRow)
	require.NotNil(t, busyRow)

	for _, cell := range idleRow.Cells {
		assert.Zero(t, cell.UtilizationPct, "months without allocations are zero cells, not holes")
		assert.Equal(t, metrics.UtilizationLow, cell.Level)
	}
	assert.InDelta(t, 100, busyRow.Cells[2].UtilizationPct, 0.001)
	assert.Equal(t, metrics.UtilizationHealthy, busyRow.Cells[2].Level)
}

func TestHeatmapProjectTeam_UnknownTeam(t *testing.T) {
	r := setupRepos(t)
	svc := NewHeatmapService(r.teams, r.resources, r.plans, r.tracked, r.capacity)

	_, err := svc.ProjectTeam(context.Background(), contract.HeatmapRequest{
		TeamID: "missing",
		Range: domain.PeriodRange{
			From: domain.Period{Year: 2025, Month: 1},
			To:   domain.Period{Year: 2025, Month: 2},
		},
	})
	assert.Error(t, err)
}

func TestHeatmapDrilldown_FiltersToPositiveHours(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	secID, _, resID, projID := orgFixture(t, r)

	other := testutil.NewTestProject(secID, "Internal Tools", testutil.WithCompanyCode("TOOLS1"))
	require.NoError(t, r.projects.Create(ctx, other))

	allocA := seedAllocation(t, r, resID, projID)
	allocB := seedAllocation(t, r, resID, other.ID)

	require.NoError(t, r.plans.Upsert(ctx, testutil.NewTestPlan(allocA.ID, 2025, 3, 120)))
	require.NoError(t, r.plans.Upsert(ctx, testutil.NewTestPlan(allocB.ID, 2025, 3, 0)))

	svc := NewHeatmapService(r.teams, r.resources, r.plans, r.tracked, r.capacity)

	resp, err := svc.Drilldown(ctx, contract.DrilldownRequest{
		ResourceID: resID,
		Period:     domain.Period{Year: 2025, Month: 3},
		Kind:       domain.MetricPlanned,
	})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1, "zero-hour projects are dropped from the breakdown")
	assert.Equal(t, "Customer Portal", resp.Entries[0].ProjectName)
	assert.InDelta(t, 120, resp.Entries[0].Hours, 0.001)
}

func TestHeatmapDrilldown_ActualKindReadsTrackedHours(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	_, _, resID, projID := orgFixture(t, r)
	seedAllocation(t, r, resID, projID)

	require.NoError(t, r.tracked.Upsert(ctx, testutil.NewTestTracked(resID, projID, 2025, 3, 95)))

	svc := NewHeatmapService(r.teams, r.resources, r.plans, r.tracked, r.capacity)

	resp, err := svc.Drilldown(ctx, contract.DrilldownRequest{
		ResourceID: resID,
		Period:     domain.Period{Year: 2025, Month: 3},
		Kind:       domain.MetricActual,
	})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.InDelta(t, 95, resp.Entries[0].Hours, 0.001)
	assert.Equal(t, domain.MetricActual, resp.Kind)
}
