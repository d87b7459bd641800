package formatter

import (
	"fmt"
	"strings"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// FormatHeatmap formats the team utilization grid. Each cell shows the
// planned utilization percentage colored by its level, so an idle month
// reads as a blue 0% rather than a gap.
func FormatHeatmap(resp *contract.HeatmapResponse) string {
	var b strings.Builder

	b.WriteString(Header("Team heatmap: "+resp.TeamName) + "\n\n")

	headers := make([]string, 0, len(resp.Periods)+1)
	headers = append(headers, "RESOURCE")
	for _, p := range resp.Periods {
		headers = append(headers, PeriodLabel(p))
	}

	rows := make([][]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		row := make([]string, 0, len(r.Cells)+1)
		row = append(row, Bold(r.ResourceName))
		for _, c := range r.Cells {
			row = append(row, heatmapCell(c))
		}
		rows = append(rows, row)
	}

	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Dim("Legend: ") + UtilizationIndicator("low") + Dim(" <85%  ") +
		UtilizationIndicator("healthy") + Dim(" 85-100%  ") +
		UtilizationIndicator("over") + Dim(" >100%") + "\n")

	if w := FormatWarnings(resp.Warnings); w != "" {
		b.WriteString("\n" + w)
	}

	return b.String()
}

func heatmapCell(c contract.HeatmapCell) string {
	return UtilizationColor(c.Level).Render(fmt.Sprintf("%3.0f%%", c.UtilizationPct))
}

// FormatDrilldown formats the project breakdown behind one heatmap cell.
func FormatDrilldown(resp *contract.DrilldownResponse) string {
	var b strings.Builder

	kind := "planned"
	if resp.Kind == domain.MetricActual {
		kind = "tracked"
	}
	b.WriteString(Header(fmt.Sprintf("%s hours, %s", kind, PeriodLabel(resp.Period))) + "\n\n")

	if len(resp.Entries) == 0 {
		b.WriteString(Dim("No hours recorded for this month.") + "\n")
		return b.String()
	}

	var total float64
	rows := make([][]string, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		rows = append(rows, []string{Bold(e.ProjectName), FormatHours(e.Hours)})
		total += e.Hours
	}
	b.WriteString(RenderTable([]string{"PROJECT", "HOURS"}, rows))

	b.WriteString("\n")
	b.WriteString(Dim("Total: "+FormatHours(total)) + "\n")

	return b.String()
}
