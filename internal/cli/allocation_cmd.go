package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/planner"
	"github.com/ricardofreitas/staffing/internal/repository"
	"github.com/spf13/cobra"
)

func newAllocationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "allocation",
		Aliases: []string{"alloc"},
		Short:   "Manage allocations and their monthly plans",
	}

	cmd.AddCommand(
		newAllocationAddCmd(app),
		newAllocationListCmd(app),
		newAllocationInspectCmd(app),
		newAllocationSetHoursCmd(app),
		newAllocationRemoveCmd(app),
	)

	return cmd
}

// parsePlanFlags parses repeatable "YYYY-MM=hours" pairs into monthly plans.
func parsePlanFlags(pairs []string) ([]domain.MonthlyPlan, []domain.Period, error) {
	plans := make([]domain.MonthlyPlan, 0, len(pairs))
	keep := make([]domain.Period, 0, len(pairs))
	for _, pair := range pairs {
		period, hours, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, nil, fmt.Errorf("plan %q must be in YYYY-MM=hours form", pair)
		}
		p, err := domain.ParsePeriod(period)
		if err != nil {
			return nil, nil, err
		}
		h, err := strconv.ParseFloat(hours, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("plan hours %q is not a number", hours)
		}
		keep = append(keep, p)
		if h > 0 {
			plans = append(plans, domain.MonthlyPlan{Period: p, PlannedHours: h})
		}
	}
	return plans, keep, nil
}

func reportSave(resp *contract.SaveAllocationResponse, err error) error {
	var partial *contract.PartialSaveError
	if errors.As(err, &partial) {
		fmt.Printf("Allocation %s saved, but some hours did not land:\n", partial.AllocationID[:8])
		for _, p := range partial.FailedPeriods {
			fmt.Printf("  %s\n", formatter.StyleRed.Render(p.String()))
		}
		fmt.Println("Re-run with the same plans to retry the failed months.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Saved allocation %s with %d planned month(s)\n", resp.AllocationID[:8], resp.PlansSaved)
	return nil
}

func newAllocationAddCmd(app *App) *cobra.Command {
	var resource, project, start, end, status, notes string
	var planPairs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Allocate a resource to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resourceID, err := resolveResourceID(ctx, app, resource)
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			alloc := domain.Allocation{
				ResourceID:  resourceID,
				ProjectID:   projectID,
				StartDate:   startDate,
				Status:      domain.AllocationStatus(status),
				Observation: notes,
			}
			if end != "" {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				alloc.EndDate = &endDate
			}

			plans, keep, err := parsePlanFlags(planPairs)
			if err != nil {
				return err
			}

			resp, err := app.Allocations.Save(ctx, contract.SaveAllocationRequest{
				Allocation:  alloc,
				Plans:       plans,
				KeepPeriods: keep,
			})
			return reportSave(resp, err)
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Resource ID or name")
	cmd.Flags().StringVar(&project, "project", "", "Project ID or company code")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), omit for open-ended")
	cmd.Flags().StringVar(&status, "status", "planned", "Status (planned|confirmed|closed)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form observation")
	cmd.Flags().StringArrayVar(&planPairs, "plan", nil, "Planned hours as YYYY-MM=hours (repeatable)")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newAllocationListCmd(app *App) *cobra.Command {
	var resource, project, team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List allocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var filter repository.AllocationFilter
			if resource != "" {
				id, err := resolveResourceID(ctx, app, resource)
				if err != nil {
					return err
				}
				filter.ResourceID = id
			}
			if project != "" {
				id, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				filter.ProjectID = id
			}
			if team != "" {
				id, err := resolveTeamID(ctx, app, team)
				if err != nil {
					return err
				}
				filter.TeamID = id
			}

			items, err := app.Allocations.List(ctx, filter)
			if err != nil {
				return err
			}

			rows := make([]formatter.AllocationListRow, 0, len(items))
			for _, it := range items {
				rows = append(rows, formatter.AllocationListRow{
					ID:           it.Allocation.ID,
					ResourceName: it.ResourceName,
					ProjectName:  it.ProjectName,
					ProjectCode:  it.ProjectCode,
					Status:       it.Allocation.Status,
					StartDate:    it.Allocation.StartDate,
					EndDate:      it.Allocation.EndDate,
				})
			}
			fmt.Print(formatter.FormatAllocationList(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Only allocations for this resource")
	cmd.Flags().StringVar(&project, "project", "", "Only allocations on this project")
	cmd.Flags().StringVar(&team, "team", "", "Only allocations in this team")

	return cmd
}

func newAllocationInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show an allocation with its monthly plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			alloc, plans, err := app.Allocations.Get(ctx, args[0])
			if err != nil {
				return err
			}

			resourceName := alloc.ResourceID
			if r, err := app.Resources.GetByID(ctx, alloc.ResourceID); err == nil {
				resourceName = r.Name
			}
			projectName := alloc.ProjectID
			if p, err := app.Projects.GetByID(ctx, alloc.ProjectID); err == nil {
				projectName = p.Name
			}

			fmt.Print(formatter.FormatAllocationInspect(formatter.AllocationInspectData{
				Allocation:   alloc,
				ResourceName: resourceName,
				ProjectName:  projectName,
				Plans:        plans,
			}))
			return nil
		},
	}
}

func newAllocationSetHoursCmd(app *App) *cobra.Command {
	var planPairs []string

	cmd := &cobra.Command{
		Use:   "set-hours ID",
		Short: "Update the monthly plan of an allocation",
		Long: "Updates the monthly plan: months not listed keep their stored hours,\n" +
			"months set to 0 are retracted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			alloc, stored, err := app.Allocations.Get(ctx, args[0])
			if err != nil {
				return err
			}

			matrix := planner.NewPlanMatrix(alloc.ID)
			matrix.Load(stored)
			for _, pair := range planPairs {
				period, hours, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("plan %q must be in YYYY-MM=hours form", pair)
				}
				p, err := domain.ParsePeriod(period)
				if err != nil {
					return err
				}
				if err := matrix.SetHours(p, hours); err != nil {
					return err
				}
			}

			resp, err := app.Allocations.Save(ctx, contract.SaveAllocationRequest{
				Allocation:  *alloc,
				Plans:       matrix.ChangedBatch(),
				KeepPeriods: matrix.KeepPeriods(),
			})
			return reportSave(resp, err)
		},
	}

	cmd.Flags().StringArrayVar(&planPairs, "plan", nil, "Planned hours as YYYY-MM=hours (repeatable)")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newAllocationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an allocation and its plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Allocations.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Allocation removed.")
			return nil
		},
	}
}
