package formatter

import (
	"testing"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestFormatHeatmap(t *testing.T) {
	periods := []domain.Period{
		{Year: 2025, Month: 3},
		{Year: 2025, Month: 4},
	}
	resp := &contract.HeatmapResponse{
		TeamID:   "team-1",
		TeamName: "Platform",
		Periods:  periods,
		Rows: []contract.HeatmapRow{
			{
				ResourceID:   "res-1",
				ResourceName: "Ana Souza",
				Cells: []contract.HeatmapCell{
					{Period: periods[0], UtilizationPct: 100, Level: metrics.UtilizationHealthy},
					{Period: periods[1], UtilizationPct: 110, Level: metrics.UtilizationOver},
				},
			},
			{
				ResourceID:   "res-2",
				ResourceName: "Carla Dias",
				Cells: []contract.HeatmapCell{
					{Period: periods[0], Level: metrics.UtilizationLow},
					{Period: periods[1], Level: metrics.UtilizationLow},
				},
			},
		},
	}

	out := FormatHeatmap(resp)

	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, "Mar 2025")
	assert.Contains(t, out, "Ana Souza")
	assert.Contains(t, out, "Carla Dias")
	assert.Contains(t, out, "110%")
	assert.Contains(t, out, "  0%")
	assert.Contains(t, out, "Legend")
}

func TestFormatDrilldown(t *testing.T) {
	resp := &contract.DrilldownResponse{
		ResourceID: "res-1",
		Period:     domain.Period{Year: 2025, Month: 3},
		Kind:       domain.MetricPlanned,
		Entries: []contract.ProjectBreakdownEntry{
			{ProjectID: "proj-1", ProjectName: "Customer Portal", Hours: 100},
			{ProjectID: "proj-2", ProjectName: "Billing", Hours: 40},
		},
	}

	out := FormatDrilldown(resp)
	assert.Contains(t, out, "PLANNED HOURS, MAR 2025")
	assert.Contains(t, out, "Customer Portal")
	assert.Contains(t, out, "Total: 140h")
}

func TestFormatDrilldown_Empty(t *testing.T) {
	resp := &contract.DrilldownResponse{
		ResourceID: "res-1",
		Period:     domain.Period{Year: 2025, Month: 3},
		Kind:       domain.MetricActual,
	}
	out := FormatDrilldown(resp)
	assert.Contains(t, out, "No hours recorded")
}
