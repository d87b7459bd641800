package cli

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/spf13/cobra"
)

func newHeatmapCmd(app *App) *cobra.Command {
	var rng rangeFlags

	cmd := &cobra.Command{
		Use:   "heatmap TEAM",
		Short: "Show the utilization heatmap for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			periodRange, err := rng.resolve()
			if err != nil {
				return err
			}

			resp, err := app.Heatmap.ProjectTeam(ctx, contract.HeatmapRequest{
				TeamID: teamID,
				Range:  periodRange,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHeatmap(resp))
			return nil
		},
	}

	rng.register(cmd.Flags())
	cmd.AddCommand(newHeatmapDrilldownCmd(app))

	return cmd
}

func newHeatmapDrilldownCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "drilldown RESOURCE PERIOD",
		Short: "Break one heatmap cell down by project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resourceID, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			period, err := domain.ParsePeriod(args[1])
			if err != nil {
				return err
			}

			resp, err := app.Heatmap.Drilldown(ctx, contract.DrilldownRequest{
				ResourceID: resourceID,
				Period:     period,
				Kind:       domain.MetricKind(kind),
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDrilldown(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "planned", "Hours column to break down (planned|actual)")

	return cmd
}
