// Package metrics computes per-period utilization figures from
// capacity, planned and tracked hours.
package metrics

import (
	"github.com/ricardofreitas/staffing/internal/domain"
)

// MonthlyMetric is the computed view of one resource-month.
type MonthlyMetric struct {
	Period                domain.Period
	AvailableHours        float64
	PlannedHours          float64
	ActualHours           float64
	Balance               float64
	UtilizationPlannedPct float64
	UtilizationActualPct  float64
	Overallocated         bool
}

// UtilizationLevel classifies a utilization percentage for presentation.
type UtilizationLevel string

const (
	// UtilizationOver marks months planned past the available capacity.
	UtilizationOver UtilizationLevel = "over"
	// UtilizationHealthy marks months in the target load band.
	UtilizationHealthy UtilizationLevel = "healthy"
	// UtilizationLow marks months with spare capacity.
	UtilizationLow UtilizationLevel = "low"
)

const healthyFloorPct = 85.0

// ClassifyUtilization is the single classification used by every view:
// above 100% is over, 85% and up is healthy, anything below is low.
func ClassifyUtilization(pct float64) UtilizationLevel {
	switch {
	case pct > 100:
		return UtilizationOver
	case pct >= healthyFloorPct:
		return UtilizationHealthy
	default:
		return UtilizationLow
	}
}

// MonthlyInput carries the raw facts for one period before computation.
type MonthlyInput struct {
	Period         domain.Period
	AvailableHours float64
	PlannedHours   float64
	ActualHours    float64
}

// ComputeMonthly derives balance and utilization for one period. A
// month with zero capacity reports zero utilization rather than
// dividing by zero.
func ComputeMonthly(in MonthlyInput) MonthlyMetric {
	m := MonthlyMetric{
		Period:         in.Period,
		AvailableHours: in.AvailableHours,
		PlannedHours:   in.PlannedHours,
		ActualHours:    in.ActualHours,
		Balance:        in.AvailableHours - in.PlannedHours,
	}
	if in.AvailableHours > 0 {
		m.UtilizationPlannedPct = in.PlannedHours / in.AvailableHours * 100
		m.UtilizationActualPct = in.ActualHours / in.AvailableHours * 100
	}
	m.Overallocated = m.Balance < 0
	return m
}

// ComputeRange computes metrics for every period in the range, reading
// per-period facts through the lookup callbacks. Missing facts count as
// zero so the output stays rectangular over the range.
func ComputeRange(rng domain.PeriodRange, available, planned, actual func(domain.Period) float64) []MonthlyMetric {
	periods := rng.Periods()
	out := make([]MonthlyMetric, 0, len(periods))
	for _, p := range periods {
		out = append(out, ComputeMonthly(MonthlyInput{
			Period:         p,
			AvailableHours: available(p),
			PlannedHours:   planned(p),
			ActualHours:    actual(p),
		}))
	}
	return out
}
