package cli

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var rng rangeFlags
	var project string

	cmd := &cobra.Command{
		Use:   "dashboard RESOURCE",
		Short: "Show the monthly availability dashboard for a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resourceID, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			periodRange, err := rng.resolve()
			if err != nil {
				return err
			}

			req := contract.DashboardRequest{
				ResourceID: resourceID,
				Range:      periodRange,
			}
			if project != "" {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				req.ProjectID = projectID
			}

			resp, err := app.Dashboard.Aggregate(ctx, req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDashboard(resp))
			return nil
		},
	}

	rng.register(cmd.Flags())
	cmd.Flags().StringVar(&project, "project", "", "Narrow planned and tracked hours to one project")

	return cmd
}
