package formatter

import (
	"fmt"
	"strings"

	"github.com/ricardofreitas/staffing/internal/metrics"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUtilizationBar renders a bar like [████████░░] 85% for a utilization
// percentage. The fill tops out at 100% even when the month is overallocated;
// the color carries the overload signal.
func RenderUtilizationBar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}

	fillPct := pct
	if fillPct < 0 {
		fillPct = 0
	}
	if fillPct > 100 {
		fillPct = 100
	}

	filled := int(fillPct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := UtilizationColor(metrics.ClassifyUtilization(pct))
	return fmt.Sprintf("[%s] %s", style.Render(bar), fmt.Sprintf("%3.0f%%", pct))
}
