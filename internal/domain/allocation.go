package domain

import (
	"fmt"
	"time"
)

// Allocation assigns a Resource to a Project for a date range. TeamID is
// denormalized from the resource's primary team at creation so team reports
// stay stable if the resource later changes teams.
//
// At most one allocation per (resource, project, overlapping range) is
// expected but not enforced; see OverlapsRange for the check callers may
// run before creating one.
type Allocation struct {
	ID          string
	ResourceID  string
	ProjectID   string
	TeamID      *string
	StartDate   time.Time
	EndDate     *time.Time // nil = open-ended
	Status      AllocationStatus
	Observation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate runs the required-field checks performed client-side before any
// persistence call. Failures are per-field, collected by the caller.
func (a *Allocation) Validate() error {
	if a.ResourceID == "" {
		return fmt.Errorf("resource is required")
	}
	if a.ProjectID == "" {
		return fmt.Errorf("project is required")
	}
	if a.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return fmt.Errorf("end date %s precedes start date %s",
			a.EndDate.Format("2006-01-02"), a.StartDate.Format("2006-01-02"))
	}
	return nil
}

// OverlapsRange reports whether the allocation's date range intersects
// [start, end]. A nil end on either side means open-ended.
func (a *Allocation) OverlapsRange(start time.Time, end *time.Time) bool {
	if end != nil && end.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && a.EndDate.Before(start) {
		return false
	}
	return true
}

// MonthlyPlan is one planned-hours entry for an Allocation in one calendar
// month. (AllocationID, Period) is the unique key; a later write for the
// same key replaces the earlier one.
type MonthlyPlan struct {
	ID           string // empty until persisted
	AllocationID string
	Period       Period
	PlannedHours float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the period and the non-negative hours invariant.
func (m *MonthlyPlan) Validate() error {
	if m.AllocationID == "" {
		return fmt.Errorf("allocation is required")
	}
	if err := m.Period.Validate(); err != nil {
		return err
	}
	if m.PlannedHours < 0 {
		return fmt.Errorf("planned hours must be non-negative, got %v", m.PlannedHours)
	}
	return nil
}
