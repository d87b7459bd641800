package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// newAllocationWizardCmd builds the new-allocation form from the current
// filter options and pushes it as a wizard view.
func newAllocationWizardCmd(state *SharedState) tea.Cmd {
	resources := state.Options.Resources
	projects := state.Options.Projects
	if len(resources) == 0 || len(projects) == 0 {
		return showOutput(formatter.Dim("No resources or projects in the current filter scope."))
	}

	resourceID := state.Scope.ResourceID
	projectID := state.Scope.ProjectID
	start := time.Now().UTC().Format("2006-01-02")
	end := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Resource").
				Options(scopeOptions(resources)...).
				Value(&resourceID),
			huh.NewSelect[string]().
				Title("Project").
				Options(scopeOptions(projects)...).
				Value(&projectID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (optional)").
				Placeholder("YYYY-MM-DD").
				Value(&end).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validateDate(s)
				}),
		),
	).WithTheme(staffingHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			startDate, err := time.Parse("2006-01-02", strings.TrimSpace(start))
			if err != nil {
				return outputMsg{output: formatter.StyleRed.Render(err.Error())}
			}
			alloc := domain.Allocation{
				ResourceID: resourceID,
				ProjectID:  projectID,
				StartDate:  startDate,
				Status:     domain.AllocationPlanned,
			}
			if trimmed := strings.TrimSpace(end); trimmed != "" {
				endDate, err := time.Parse("2006-01-02", trimmed)
				if err != nil {
					return outputMsg{output: formatter.StyleRed.Render(err.Error())}
				}
				alloc.EndDate = &endDate
			}

			resp, err := state.App.Allocations.Save(context.Background(), contract.SaveAllocationRequest{
				Allocation: alloc,
			})
			if err != nil {
				return outputMsg{output: formatter.StyleRed.Render(err.Error())}
			}
			return outputMsg{output: fmt.Sprintf(
				"Created allocation %s. Press p to plan its hours.", resp.AllocationID[:8])}
		}
	}

	return pushView(newWizardView(state, "New Allocation", form, done))
}

func scopeOptions(opts []contract.Option) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(opts))
	for _, o := range opts {
		out = append(out, huh.NewOption(o.Name, o.ID))
	}
	return out
}
