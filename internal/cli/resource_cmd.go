package cli

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
	"github.com/spf13/cobra"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage resources",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
		newResourceUpdateCmd(app),
		newResourceDeactivateCmd(app),
		newResourceRemoveCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var name, email, team string
	var dailyHours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			r := &domain.Resource{
				Name:       name,
				Email:      email,
				DailyHours: dailyHours,
			}
			if team != "" {
				teamID, err := resolveTeamID(ctx, app, team)
				if err != nil {
					return err
				}
				r.TeamID = &teamID
			}

			if err := app.Resources.Create(ctx, r); err != nil {
				return err
			}
			fmt.Printf("Created resource %s [%s]\n", r.Name, r.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&team, "team", "", "Primary team ID or name")
	cmd.Flags().Float64Var(&dailyHours, "daily-hours", 8, "Daily capacity in hours")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	var team string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter := repository.ResourceFilter{ActiveOnly: !all}
			if team != "" {
				teamID, err := resolveTeamID(ctx, app, team)
				if err != nil {
					return err
				}
				filter.TeamID = teamID
			}

			resources, err := app.Resources.List(ctx, filter)
			if err != nil {
				return err
			}
			if len(resources) == 0 {
				fmt.Println("No resources found.")
				return nil
			}

			rows := make([][]string, 0, len(resources))
			for _, r := range resources {
				teamName := formatter.Dim("--")
				if r.TeamID != nil {
					if t, err := app.Teams.GetByID(ctx, *r.TeamID); err == nil {
						teamName = t.Name
					}
				}
				rows = append(rows, []string{
					formatter.TruncID(r.ID),
					formatter.Bold(r.Name),
					r.Email,
					teamName,
					formatter.FormatHours(r.DailyHours) + "/day",
					formatter.ActivePill(r.Active),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "NAME", "EMAIL", "TEAM", "CAPACITY", "STATUS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Only resources in this team")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive resources")

	return cmd
}

func newResourceUpdateCmd(app *App) *cobra.Command {
	var name, email, team string
	var dailyHours float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Resources.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				r.Name = name
			}
			if cmd.Flags().Changed("email") {
				r.Email = email
			}
			if cmd.Flags().Changed("daily-hours") {
				r.DailyHours = dailyHours
			}
			if cmd.Flags().Changed("team") {
				if team == "" {
					r.TeamID = nil
				} else {
					teamID, err := resolveTeamID(ctx, app, team)
					if err != nil {
						return err
					}
					r.TeamID = &teamID
				}
			}

			if err := app.Resources.Update(ctx, r); err != nil {
				return err
			}
			fmt.Printf("Updated resource %s\n", r.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&team, "team", "", "Primary team ID or name (empty to unassign)")
	cmd.Flags().Float64Var(&dailyHours, "daily-hours", 8, "Daily capacity in hours")

	return cmd
}

func newResourceDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate ID",
		Short: "Mark a resource inactive, keeping its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Resources.Deactivate(ctx, id); err != nil {
				return err
			}
			fmt.Println("Resource deactivated.")
			return nil
		},
	}
}

func newResourceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Resources.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Resource removed.")
			return nil
		},
	}
}
