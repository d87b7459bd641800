package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// FormatHours renders an hour quantity without trailing zero noise:
// 160 -> "160h", 62.5 -> "62.5h".
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	return s + "h"
}

// PeriodLabel returns a short human label for a month, e.g. "Mar 2025".
func PeriodLabel(p domain.Period) string {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// DateOrOpen formats a nullable end date, rendering nil as "open".
func DateOrOpen(t *time.Time) string {
	if t == nil {
		return Dim("open")
	}
	return t.Format("2006-01-02")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// AllocationStatusPill returns a colored status indicator for an allocation.
func AllocationStatusPill(status domain.AllocationStatus) string {
	switch status {
	case domain.AllocationPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.AllocationConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.AllocationClosed:
		return StyleDim.Render("✔ Closed")
	default:
		return StyleDim.Render(string(status))
	}
}

// ProjectStatusPill returns a colored status indicator for a project.
func ProjectStatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectPaused:
		return StyleYellow.Render("○ Paused")
	case domain.ProjectDone:
		return StyleDim.Render("✔ Done")
	case domain.ProjectArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// ActivePill renders the active flag used on resource listings.
func ActivePill(active bool) string {
	if active {
		return StyleGreen.Render("● Active")
	}
	return StyleDim.Render("✖ Inactive")
}

// FormatWarnings renders response warnings as a dimmed block, one per line.
// Returns the empty string when there are none.
func FormatWarnings(warnings []contract.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("⚠ ") + Dim(fmt.Sprintf("%s (%s)", w.Message, w.Code)) + "\n")
	}
	return b.String()
}
