package app

import (
	"fmt"
	"strings"

	"github.com/ricardofreitas/staffing/internal/domain"
)

// SaveAllocationRequest carries the allocation header plus the edited
// monthly plans for the two-phase save. Plans must already be filtered
// to positive hours; KeepPeriods lists the periods that survive so the
// store can retract the rest.
type SaveAllocationRequest struct {
	Allocation  domain.Allocation
	Plans       []domain.MonthlyPlan
	KeepPeriods []domain.Period
}

// SaveAllocationResponse reports the committed allocation. Warnings
// never indicate data loss.
type SaveAllocationResponse struct {
	AllocationID string
	PlansSaved   int
	Warnings     []Warning
}

// PartialSaveError reports a phase-two failure after the allocation
// header was already committed. It is distinct from a total failure:
// the header exists, only some or all period writes did not land.
type PartialSaveError struct {
	AllocationID  string
	FailedPeriods []domain.Period
	Err           error
}

func (e *PartialSaveError) Error() string {
	periods := make([]string, len(e.FailedPeriods))
	for i, p := range e.FailedPeriods {
		periods[i] = p.String()
	}
	return fmt.Sprintf("allocation %s saved but hours failed for %s: %v",
		e.AllocationID, strings.Join(periods, ", "), e.Err)
}

func (e *PartialSaveError) Unwrap() error {
	return e.Err
}
