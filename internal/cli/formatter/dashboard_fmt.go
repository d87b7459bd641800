package formatter

import (
	"fmt"
	"strings"

	"github.com/ricardofreitas/staffing/internal/contract"
)

const utilizationBarWidth = 10

// FormatDashboard formats a resource availability dashboard as a styled
// month-by-month table with a closing totals line.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	b.WriteString(Header("Availability: "+resp.ResourceName) + "\n\n")

	headers := []string{"MONTH", "AVAILABLE", "PLANNED", "ACTUAL", "BALANCE", "UTILIZATION", ""}
	rows := make([][]string, 0, len(resp.Months))

	var totalAvailable, totalPlanned, totalActual float64
	for _, m := range resp.Months {
		balance := FormatHours(m.Balance)
		if m.Overallocated {
			balance = StyleRed.Render(balance)
		}
		rows = append(rows, []string{
			Bold(PeriodLabel(m.Period)),
			FormatHours(m.AvailableHours),
			FormatHours(m.PlannedHours),
			FormatHours(m.ActualHours),
			balance,
			RenderUtilizationBar(m.UtilizationPlannedPct, utilizationBarWidth),
			UtilizationIndicator(m.Level),
		})
		totalAvailable += m.AvailableHours
		totalPlanned += m.PlannedHours
		totalActual += m.ActualHours
	}

	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Total: %s available, %s planned, %s tracked",
		FormatHours(totalAvailable), FormatHours(totalPlanned), FormatHours(totalActual))) + "\n")

	if w := FormatWarnings(resp.Warnings); w != "" {
		b.WriteString("\n" + w)
	}

	return b.String()
}
