// Package planner holds the in-memory monthly planning matrix edited
// alongside an allocation before its hours are persisted as a batch.
package planner

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ricardofreitas/staffing/internal/domain"
)

// Entry is one editable (year, month) → planned hours cell. ID is empty
// until the entry has been persisted at least once.
type Entry struct {
	ID           string
	Period       domain.Period
	PlannedHours float64
}

// PlanMatrix is a sparse table of planned hours for a single allocation,
// keyed by period so that re-adding a removed month updates exactly one
// entry instead of appending a duplicate row.
type PlanMatrix struct {
	allocationID string
	entries      map[domain.Period]Entry
	baseline     map[domain.Period]float64
	now          func() time.Time
}

// NewPlanMatrix returns an empty matrix for the given allocation.
func NewPlanMatrix(allocationID string) *PlanMatrix {
	return &PlanMatrix{
		allocationID: allocationID,
		entries:      make(map[domain.Period]Entry),
		baseline:     make(map[domain.Period]float64),
		now:          time.Now,
	}
}

// WithClock overrides the current-time source used by AddPeriod defaults.
func (m *PlanMatrix) WithClock(now func() time.Time) *PlanMatrix {
	m.now = now
	return m
}

// Load seeds the matrix from persisted plans and records them as the
// baseline that ChangedBatch diffs against. Later duplicates for the
// same period win, matching upsert semantics on the store side.
func (m *PlanMatrix) Load(plans []domain.MonthlyPlan) {
	for _, p := range plans {
		m.entries[p.Period] = Entry{
			ID:           p.ID,
			Period:       p.Period,
			PlannedHours: p.PlannedHours,
		}
		m.baseline[p.Period] = p.PlannedHours
	}
}

// AddPeriod appends the next editable month and returns its period.
// An empty matrix starts at the current calendar month; otherwise the
// new entry follows the last period, rolling the year over after
// December. Adding over an existing period leaves it untouched.
func (m *PlanMatrix) AddPeriod() domain.Period {
	var next domain.Period
	if len(m.entries) == 0 {
		next = domain.PeriodOf(m.now())
	} else {
		next = m.lastPeriod().Next()
	}
	if _, ok := m.entries[next]; !ok {
		m.entries[next] = Entry{Period: next}
	}
	return next
}

// SetHours coerces raw editor input into the planned hours for a period.
// Empty input is a transient editing state and counts as zero; leading
// zeros are stripped; negative or malformed input is rejected.
func (m *PlanMatrix) SetHours(p domain.Period, raw string) error {
	hours, err := CoerceHours(raw)
	if err != nil {
		return err
	}
	entry, ok := m.entries[p]
	if !ok {
		entry = Entry{Period: p}
	}
	entry.PlannedHours = hours
	m.entries[p] = entry
	return nil
}

// RemovePeriod drops a period from the matrix. Removing an unknown
// period is a no-op.
func (m *PlanMatrix) RemovePeriod(p domain.Period) {
	delete(m.entries, p)
}

// Len reports the number of periods currently in the matrix, including
// zero-valued ones.
func (m *PlanMatrix) Len() int {
	return len(m.entries)
}

// Entries projects the matrix as a slice sorted by (year, month)
// ascending, for display. Sort order carries no persistence meaning.
func (m *PlanMatrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period.Before(out[j].Period)
	})
	return out
}

// ChangedBatch returns the minimal set of plans to persist: entries that
// are new since Load or whose hours differ from the loaded baseline.
// Entries with zero planned hours mean "no plan" and are dropped so
// empty rows never accumulate server-side; their retraction is carried
// by KeepPeriods, not the batch.
func (m *PlanMatrix) ChangedBatch() []domain.MonthlyPlan {
	batch := make([]domain.MonthlyPlan, 0, len(m.entries))
	for _, e := range m.Entries() {
		if e.PlannedHours <= 0 {
			continue
		}
		if loaded, ok := m.baseline[e.Period]; ok && loaded == e.PlannedHours {
			continue
		}
		batch = append(batch, domain.MonthlyPlan{
			ID:           e.ID,
			AllocationID: m.allocationID,
			Period:       e.Period,
			PlannedHours: e.PlannedHours,
		})
	}
	return batch
}

// KeepPeriods lists every period with positive hours, changed or not, in
// the shape the store needs to retract everything else. Deriving it from
// all positive entries rather than the batch keeps unchanged months
// alive through a save.
func (m *PlanMatrix) KeepPeriods() []domain.Period {
	keep := make([]domain.Period, 0, len(m.entries))
	for _, e := range m.Entries() {
		if e.PlannedHours > 0 {
			keep = append(keep, e.Period)
		}
	}
	return keep
}

func (m *PlanMatrix) lastPeriod() domain.Period {
	var last domain.Period
	for p := range m.entries {
		if last.Before(p) {
			last = p
		}
	}
	return last
}

// CoerceHours parses editor input into non-negative hours. The empty
// string is treated as zero because the field may be mid-edit.
func CoerceHours(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	trimmed = stripLeadingZeros(trimmed)
	hours, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("planned hours %q is not a number", raw)
	}
	if hours < 0 {
		return 0, fmt.Errorf("planned hours must not be negative, got %v", hours)
	}
	return hours, nil
}

func stripLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' && s[i+1] != '.' {
		i++
	}
	return s[i:]
}
