package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/ricardofreitas/staffing/internal/cli"
	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/repository"
	"github.com/ricardofreitas/staffing/internal/service"
	"github.com/ricardofreitas/staffing/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.staffing/staffing.db
	dbPath := os.Getenv("STAFFING_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".staffing", "staffing.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	teamRepo := repository.NewSQLiteTeamRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	allocRepo := repository.NewSQLiteAllocationRepo(database)
	planRepo := repository.NewSQLiteMonthlyPlanRepo(database)
	trackedRepo := repository.NewSQLiteTrackedHoursRepo(database)
	capacityRepo := repository.NewSQLiteCapacityRepo(database)

	// Wire unit of work for the two-phase allocation save
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging to stderr
	var observers []service.UseCaseObserver
	if os.Getenv("STAFFING_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Tracked-hours source: the HTTP tracker when configured, otherwise
	// an offline sample source built from the current org data.
	trackerCfg := tracker.LoadConfig()
	var source service.TrackedHoursSource
	if trackerCfg.Enabled {
		var observer tracker.Observer = tracker.NoopObserver{}
		if trackerCfg.LogCalls {
			observer = tracker.NewLogObserver(os.Stderr)
		}
		source = tracker.NewClient(trackerCfg, observer)
	} else {
		source = sampleSource(resourceRepo, projectRepo)
	}

	app := &cli.App{
		Sections:    service.NewSectionService(sectionRepo),
		Teams:       service.NewTeamService(teamRepo, sectionRepo),
		Resources:   service.NewResourceService(resourceRepo, teamRepo),
		Projects:    service.NewProjectService(projectRepo),
		Scope:       service.NewScopeService(sectionRepo, teamRepo, resourceRepo, projectRepo, observers...),
		Allocations: service.NewAllocationService(allocRepo, planRepo, resourceRepo, uow, observers...),
		Dashboard:   service.NewDashboardService(resourceRepo, planRepo, trackedRepo, capacityRepo, observers...),
		Heatmap:     service.NewHeatmapService(teamRepo, resourceRepo, planRepo, trackedRepo, capacityRepo),
		Sync:        service.NewSyncService(source, trackedRepo, observers...),
	}

	rootCmd := cli.NewRootCmd(app)

	// With no arguments on an interactive terminal, open the planner TUI.
	if len(os.Args) == 1 && isatty.IsTerminal(os.Stdin.Fd()) {
		rootCmd.SetArgs([]string{"plan"})
	}

	return rootCmd.Execute()
}

// sampleSource builds the offline tracked-hours stand-in from whatever
// resources and projects exist right now.
func sampleSource(resources *repository.SQLiteResourceRepo, projects *repository.SQLiteProjectRepo) *tracker.SampleSource {
	ctx := context.Background()
	src := &tracker.SampleSource{}

	if list, err := resources.List(ctx, repository.ResourceFilter{ActiveOnly: true}); err == nil {
		for _, r := range list {
			src.ResourceIDs = append(src.ResourceIDs, r.ID)
		}
	}
	if list, err := projects.List(ctx, repository.ProjectFilter{ActiveOnly: true}); err == nil && len(list) > 0 {
		src.ProjectID = list[0].ID
	}

	return src
}
