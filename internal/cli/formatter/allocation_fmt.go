package formatter

import (
	"strings"
	"time"

	"github.com/ricardofreitas/staffing/internal/domain"
)

// AllocationListRow is the denormalized listing data for one allocation.
type AllocationListRow struct {
	ID           string
	ResourceName string
	ProjectName  string
	ProjectCode  string
	Status       domain.AllocationStatus
	StartDate    time.Time
	EndDate      *time.Time
}

// FormatAllocationList renders allocations as a table.
func FormatAllocationList(items []AllocationListRow) string {
	if len(items) == 0 {
		return Dim("No allocations found.") + "\n"
	}

	headers := []string{"ID", "RESOURCE", "PROJECT", "STATUS", "START", "END"}
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		project := a.ProjectName
		if a.ProjectCode != "" {
			project += " " + Dim("("+a.ProjectCode+")")
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(a.ResourceName),
			project,
			AllocationStatusPill(a.Status),
			a.StartDate.Format("2006-01-02"),
			DateOrOpen(a.EndDate),
		})
	}
	return RenderTable(headers, rows)
}

// AllocationInspectData bundles an allocation header with its monthly plan.
type AllocationInspectData struct {
	Allocation   *domain.Allocation
	ResourceName string
	ProjectName  string
	Plans        []domain.MonthlyPlan
}

// FormatAllocationInspect renders a single allocation with its planned
// hours per month.
func FormatAllocationInspect(data AllocationInspectData) string {
	var b strings.Builder
	a := data.Allocation

	b.WriteString(Header("Allocation") + "\n\n")
	b.WriteString(Bold(data.ResourceName) + Dim(" on ") + Bold(data.ProjectName) + "\n")
	b.WriteString(Dim("ID:     ") + a.ID + "\n")
	b.WriteString(Dim("Status: ") + AllocationStatusPill(a.Status) + "\n")
	b.WriteString(Dim("Period: ") + a.StartDate.Format("2006-01-02") + Dim(" to ") + DateOrOpen(a.EndDate) + "\n")
	if a.Observation != "" {
		b.WriteString(Dim("Notes:  ") + a.Observation + "\n")
	}

	b.WriteString("\n")
	if len(data.Plans) == 0 {
		b.WriteString(Dim("No planned hours.") + "\n")
		return b.String()
	}

	var total float64
	rows := make([][]string, 0, len(data.Plans))
	for _, p := range data.Plans {
		rows = append(rows, []string{PeriodLabel(p.Period), FormatHours(p.PlannedHours)})
		total += p.PlannedHours
	}
	b.WriteString(RenderTable([]string{"MONTH", "PLANNED"}, rows))
	b.WriteString("\n" + Dim("Total: "+FormatHours(total)) + "\n")

	return b.String()
}
