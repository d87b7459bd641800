package cli

import (
	"github.com/ricardofreitas/staffing/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sections    service.SectionService
	Teams       service.TeamService
	Resources   service.ResourceService
	Projects    service.ProjectService
	Scope       service.ScopeService
	Allocations service.AllocationService
	Dashboard   service.DashboardService
	Heatmap     service.HeatmapService
	Sync        service.SyncService
}

// NewRootCmd creates the top-level "staffing" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "staffing",
		Short: "Resource allocation planner and utilization reports",
	}

	root.AddCommand(
		newSectionCmd(app),
		newTeamCmd(app),
		newResourceCmd(app),
		newProjectCmd(app),
		newAllocationCmd(app),
		newDashboardCmd(app),
		newHeatmapCmd(app),
		newSyncCmd(app),
		newPlanCmd(app),
	)

	return root
}
