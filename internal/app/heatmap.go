package app

import (
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/metrics"
)

// HeatmapRequest asks for the per-resource utilization grid of a team.
type HeatmapRequest struct {
	TeamID string
	Range  domain.PeriodRange
}

// HeatmapCell is one resource-month in the grid. Months without any
// allocation still produce a cell with zero utilization so the grid
// stays rectangular.
type HeatmapCell struct {
	Period         domain.Period
	UtilizationPct float64
	Level          metrics.UtilizationLevel
}

// HeatmapRow is one resource across the whole requested range. Cells
// are ordered by period and always cover the full range.
type HeatmapRow struct {
	ResourceID   string
	ResourceName string
	Cells        []HeatmapCell
}

type HeatmapResponse struct {
	TeamID   string
	TeamName string
	Periods  []domain.Period
	Rows     []HeatmapRow
	Warnings []Warning
}

// DrilldownRequest asks for the project breakdown behind one cell.
// Kind selects planned or tracked hours, never both.
type DrilldownRequest struct {
	ResourceID string
	Period     domain.Period
	Kind       domain.MetricKind
}

type DrilldownResponse struct {
	ResourceID string
	Period     domain.Period
	Kind       domain.MetricKind
	Entries    []ProjectBreakdownEntry
}
