package contract

import (
	"errors"
	"testing"

	"github.com/ricardofreitas/staffing/internal/app"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/stretchr/testify/assert"
)

// --- DashboardRequest constructor defaults ---

func TestNewDashboardRequest_SetsFullYearRange(t *testing.T) {
	req := NewDashboardRequest("res-1", 2025)

	assert.Equal(t, "res-1", req.ResourceID)
	assert.Equal(t, domain.Period{Year: 2025, Month: 1}, req.Range.From)
	assert.Equal(t, domain.Period{Year: 2025, Month: 12}, req.Range.To)
	assert.Empty(t, req.ProjectID, "project narrowing is opt-in")
}

// --- Scope cascade reducer ---

func TestScope_Set_SectionClearsAllDescendants(t *testing.T) {
	s := Scope{SectionID: "sec-1", TeamID: "team-1", ResourceID: "res-1", ProjectID: "proj-1"}

	s = s.Set(FieldSection, "sec-2")

	assert.Equal(t, "sec-2", s.SectionID)
	assert.Empty(t, s.TeamID)
	assert.Empty(t, s.ResourceID)
	assert.Empty(t, s.ProjectID)
}

func TestScope_Set_TeamClearsResourceAndProject(t *testing.T) {
	s := Scope{SectionID: "sec-1", TeamID: "team-1", ResourceID: "res-1", ProjectID: "proj-1"}

	s = s.Set(FieldTeam, "team-2")

	assert.Equal(t, "sec-1", s.SectionID, "ancestors are untouched")
	assert.Equal(t, "team-2", s.TeamID)
	assert.Empty(t, s.ResourceID)
	assert.Empty(t, s.ProjectID)
}

func TestScope_Set_ProjectClearsNothingElse(t *testing.T) {
	s := Scope{SectionID: "sec-1", TeamID: "team-1", ResourceID: "res-1"}

	s = s.Set(FieldProject, "proj-9")

	assert.Equal(t, "sec-1", s.SectionID)
	assert.Equal(t, "team-1", s.TeamID)
	assert.Equal(t, "res-1", s.ResourceID)
	assert.Equal(t, "proj-9", s.ProjectID)
}

// --- Synthesized options ---

func TestEnsureOption_SynthesizesMissingEntry(t *testing.T) {
	opts := []Option{{ID: "p-1", Name: "Portal"}}

	got := EnsureOption(opts, "p-9", "Legacy Migration")

	assert.Len(t, got, 2)
	assert.Equal(t, Option{ID: "p-9", Name: "Legacy Migration"}, got[0])
}

func TestEnsureOption_PresentEntryUnchanged(t *testing.T) {
	opts := []Option{{ID: "p-1", Name: "Portal"}}

	got := EnsureOption(opts, "p-1", "Portal")

	assert.Equal(t, opts, got)
}

func TestEnsureOption_EmptyIDNoOp(t *testing.T) {
	opts := []Option{{ID: "p-1", Name: "Portal"}}

	assert.Equal(t, opts, EnsureOption(opts, "", ""))
}

// --- Error shapes ---

func TestFieldErrors_JoinsMessages(t *testing.T) {
	errs := FieldErrors{
		{Field: "resource_id", Message: "is required"},
		{Field: "start_date", Message: "is required"},
	}

	assert.Contains(t, errs.Error(), "resource_id: is required")
	assert.Contains(t, errs.Error(), "start_date: is required")
	assert.True(t, errs.HasField("resource_id"))
	assert.False(t, errs.HasField("project_id"))
}

func TestPartialSaveError_DistinctFromTotalFailure(t *testing.T) {
	cause := errors.New("connection reset")
	err := &app.PartialSaveError{
		AllocationID:  "alloc-1",
		FailedPeriods: []domain.Period{{Year: 2025, Month: 3}, {Year: 2025, Month: 4}},
		Err:           cause,
	}

	assert.Contains(t, err.Error(), "alloc-1 saved but hours failed")
	assert.Contains(t, err.Error(), "2025-03")
	assert.ErrorIs(t, err, cause)

	var partial *PartialSaveError
	assert.ErrorAs(t, error(err), &partial)
}
