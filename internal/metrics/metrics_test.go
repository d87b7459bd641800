package metrics

import (
	"math/rand"
	"testing"

	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeMonthly_TypicalMonth(t *testing.T) {
	m := ComputeMonthly(MonthlyInput{
		Period:         domain.Period{Year: 2025, Month: 3},
		AvailableHours: 160,
		PlannedHours:   100,
		ActualHours:    90,
	})

	assert.InDelta(t, 60, m.Balance, 0.0001)
	assert.False(t, m.Overallocated)
	assert.InDelta(t, 62.5, m.UtilizationPlannedPct, 0.0001)
	assert.InDelta(t, 56.25, m.UtilizationActualPct, 0.0001)
}

func TestComputeMonthly_Overallocated(t *testing.T) {
	m := ComputeMonthly(MonthlyInput{
		Period:         domain.Period{Year: 2025, Month: 4},
		AvailableHours: 160,
		PlannedHours:   170,
	})

	assert.InDelta(t, -10, m.Balance, 0.0001)
	assert.True(t, m.Overallocated)
	assert.InDelta(t, 106.25, m.UtilizationPlannedPct, 0.0001)
}

func TestComputeMonthly_ZeroCapacity(t *testing.T) {
	m := ComputeMonthly(MonthlyInput{
		Period:         domain.Period{Year: 2025, Month: 1},
		AvailableHours: 0,
		PlannedHours:   40,
		ActualHours:    20,
	})

	assert.Zero(t, m.UtilizationPlannedPct, "zero capacity must not divide by zero")
	assert.Zero(t, m.UtilizationActualPct)
	assert.InDelta(t, -40, m.Balance, 0.0001)
	assert.True(t, m.Overallocated)
}

func TestComputeMonthly_BalanceInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		available := rng.Float64() * 300
		planned := rng.Float64() * 300

		m := ComputeMonthly(MonthlyInput{
			Period:         domain.Period{Year: 2025, Month: rng.Intn(12) + 1},
			AvailableHours: available,
			PlannedHours:   planned,
		})

		assert.InDelta(t, available-planned, m.Balance, 0.0001,
			"trial %d: balance must equal available minus planned", trial)
		assert.Equal(t, m.Balance < 0, m.Overallocated,
			"trial %d: overallocated must track negative balance", trial)
	}
}

func TestClassifyUtilization(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want UtilizationLevel
	}{
		{name: "idle", pct: 0, want: UtilizationLow},
		{name: "underloaded", pct: 60, want: UtilizationLow},
		{name: "just below band", pct: 84.99, want: UtilizationLow},
		{name: "band floor", pct: 85, want: UtilizationHealthy},
		{name: "fully booked", pct: 100, want: UtilizationHealthy},
		{name: "just over", pct: 100.01, want: UtilizationOver},
		{name: "heavily over", pct: 140, want: UtilizationOver},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyUtilization(tc.pct))
		})
	}
}

func TestComputeRange_RectangularOverRange(t *testing.T) {
	rng := domain.PeriodRange{
		From: domain.Period{Year: 2025, Month: 11},
		To:   domain.Period{Year: 2026, Month: 2},
	}

	planned := map[domain.Period]float64{
		{Year: 2025, Month: 12}: 120,
	}

	out := ComputeRange(rng,
		func(domain.Period) float64 { return 160 },
		func(p domain.Period) float64 { return planned[p] },
		func(domain.Period) float64 { return 0 },
	)

	assert.Len(t, out, 4, "every month in range must be present")
	assert.Equal(t, domain.Period{Year: 2025, Month: 11}, out[0].Period)
	assert.Equal(t, domain.Period{Year: 2026, Month: 2}, out[3].Period)
	assert.Zero(t, out[0].PlannedHours, "months without plans stay zero, not omitted")
	assert.InDelta(t, 75, out[1].UtilizationPlannedPct, 0.0001)
}
