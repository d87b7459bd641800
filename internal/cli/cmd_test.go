package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
	"github.com/ricardofreitas/staffing/internal/service"
	"github.com/ricardofreitas/staffing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	sectionRepo := repository.NewSQLiteSectionRepo(database)
	teamRepo := repository.NewSQLiteTeamRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	allocRepo := repository.NewSQLiteAllocationRepo(database)
	planRepo := repository.NewSQLiteMonthlyPlanRepo(database)
	trackedRepo := repository.NewSQLiteTrackedHoursRepo(database)
	capacityRepo := repository.NewSQLiteCapacityRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Sections:    service.NewSectionService(sectionRepo),
		Teams:       service.NewTeamService(teamRepo, sectionRepo),
		Resources:   service.NewResourceService(resourceRepo, teamRepo),
		Projects:    service.NewProjectService(projectRepo),
		Scope:       service.NewScopeService(sectionRepo, teamRepo, resourceRepo, projectRepo),
		Allocations: service.NewAllocationService(allocRepo, planRepo, resourceRepo, uow),
		Dashboard:   service.NewDashboardService(resourceRepo, planRepo, trackedRepo, capacityRepo),
		Heatmap:     service.NewHeatmapService(teamRepo, resourceRepo, planRepo, trackedRepo, capacityRepo),
		Sync:        service.NewSyncService(nil, trackedRepo),
	}
}

// seedOrg creates a section, team, resource and project through the services.
func seedOrg(t *testing.T, app *App) (sectionID, teamID, resourceID, projectID string) {
	t.Helper()
	ctx := context.Background()

	section := &domain.Section{Name: "Engineering"}
	require.NoError(t, app.Sections.Create(ctx, section))

	team := &domain.Team{Name: "Platform", SectionID: section.ID}
	require.NoError(t, app.Teams.Create(ctx, team))

	resource := &domain.Resource{Name: "Ana Souza", DailyHours: 8, TeamID: &team.ID}
	require.NoError(t, app.Resources.Create(ctx, resource))

	project := &domain.Project{Name: "Customer Portal", CompanyCode: "PORTAL1", SectionID: section.ID, Status: domain.ProjectActive}
	require.NoError(t, app.Projects.Create(ctx, project))

	return section.ID, team.ID, resource.ID, project.ID
}

// executeCmd runs a cobra command and captures cobra-level output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSectionCmd_Add(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "section", "add", "--name", "Engineering")
	require.NoError(t, err)

	sections, err := app.Sections.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Engineering", sections[0].Name)
}

func TestSectionCmd_AddRequiresName(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "section", "add")
	assert.Error(t, err)
}

func TestTeamCmd_AddResolvesSectionByName(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "section", "add", "--name", "Engineering")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "team", "add", "--name", "Platform", "--section", "engineering")
	require.NoError(t, err)

	teams, err := app.Teams.List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Platform", teams[0].Name)
}

func TestResourceCmd_AddAndDeactivate(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	_, err := executeCmd(t, app, "resource", "add", "--name", "Carla Dias", "--daily-hours", "6")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "resource", "deactivate", "Carla Dias")
	require.NoError(t, err)

	active, err := app.Resources.List(context.Background(), repository.ResourceFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Ana Souza", active[0].Name)
}

func TestProjectCmd_AddValidatesCode(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	_, err := executeCmd(t, app, "project", "add",
		"--name", "Billing", "--code", "bad code!", "--section", "Engineering")
	assert.Error(t, err)
}

func TestAllocationCmd_AddWithPlans(t *testing.T) {
	app := testApp(t)
	_, _, resourceID, projectID := seedOrg(t, app)
	ctx := context.Background()

	_, err := executeCmd(t, app, "allocation", "add",
		"--resource", "Ana Souza",
		"--project", "PORTAL1",
		"--start", "2025-03-01",
		"--plan", "2025-03=100",
		"--plan", "2025-04=80",
	)
	require.NoError(t, err)

	items, err := app.Allocations.List(ctx, repository.AllocationFilter{ResourceID: resourceID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, projectID, items[0].Allocation.ProjectID)

	_, plans, err := app.Allocations.Get(ctx, items[0].Allocation.ID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
}

func TestAllocationCmd_SetHoursZeroRetractsMonth(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)
	ctx := context.Background()

	_, err := executeCmd(t, app, "allocation", "add",
		"--resource", "Ana Souza",
		"--project", "PORTAL1",
		"--start", "2025-03-01",
		"--plan", "2025-03=100",
		"--plan", "2025-04=60",
	)
	require.NoError(t, err)

	items, err := app.Allocations.List(ctx, repository.AllocationFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	allocID := items[0].Allocation.ID

	// Zeroing April retracts it; March is bumped.
	_, err = executeCmd(t, app, "allocation", "set-hours", allocID,
		"--plan", "2025-03=110",
		"--plan", "2025-04=0",
	)
	require.NoError(t, err)

	_, plans, err := app.Allocations.Get(ctx, allocID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, domain.Period{Year: 2025, Month: 3}, plans[0].Period)
	assert.Equal(t, 110.0, plans[0].PlannedHours)
}

func TestAllocationCmd_SetHoursKeepsUnlistedMonths(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)
	ctx := context.Background()

	_, err := executeCmd(t, app, "allocation", "add",
		"--resource", "Ana Souza",
		"--project", "PORTAL1",
		"--start", "2025-03-01",
		"--plan", "2025-03=100",
		"--plan", "2025-04=60",
	)
	require.NoError(t, err)

	items, err := app.Allocations.List(ctx, repository.AllocationFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	allocID := items[0].Allocation.ID

	// Only April is listed; March keeps its stored hours.
	_, err = executeCmd(t, app, "allocation", "set-hours", allocID,
		"--plan", "2025-04=70",
	)
	require.NoError(t, err)

	_, plans, err := app.Allocations.Get(ctx, allocID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 100.0, plans[0].PlannedHours)
	assert.Equal(t, 70.0, plans[1].PlannedHours)
}

func TestAllocationCmd_RejectsBadPlanFlag(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	_, err := executeCmd(t, app, "allocation", "add",
		"--resource", "Ana Souza",
		"--project", "PORTAL1",
		"--start", "2025-03-01",
		"--plan", "march=100",
	)
	assert.Error(t, err)
}

func TestDashboardCmd_UnknownResource(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	_, err := executeCmd(t, app, "dashboard", "nobody")
	assert.Error(t, err)
}

func TestHeatmapCmd_RunsForSeededTeam(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	_, err := executeCmd(t, app, "heatmap", "Platform", "--from", "2025-03", "--to", "2025-06")
	require.NoError(t, err)
}

func TestResolveResourceID(t *testing.T) {
	app := testApp(t)
	_, _, resourceID, _ := seedOrg(t, app)
	ctx := context.Background()

	id, err := resolveResourceID(ctx, app, resourceID)
	require.NoError(t, err)
	assert.Equal(t, resourceID, id)

	id, err = resolveResourceID(ctx, app, "ana souza")
	require.NoError(t, err)
	assert.Equal(t, resourceID, id)

	id, err = resolveResourceID(ctx, app, resourceID[:8])
	require.NoError(t, err)
	assert.Equal(t, resourceID, id)

	_, err = resolveResourceID(ctx, app, "ghost")
	assert.Error(t, err)
}

func TestResolveProjectID_CompanyCode(t *testing.T) {
	app := testApp(t)
	_, _, _, projectID := seedOrg(t, app)

	id, err := resolveProjectID(context.Background(), app, "portal1")
	require.NoError(t, err)
	assert.Equal(t, projectID, id)
}

func TestParsePlanFlags(t *testing.T) {
	plans, keep, err := parsePlanFlags([]string{"2025-03=100", "2025-04=0"})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 100.0, plans[0].PlannedHours)
	assert.Len(t, keep, 2)

	_, _, err = parsePlanFlags([]string{"2025-03"})
	assert.Error(t, err)

	_, _, err = parsePlanFlags([]string{"2025-13=10"})
	assert.Error(t, err)
}

func TestRangeFlags_Resolve(t *testing.T) {
	f := rangeFlags{from: "2025-03", to: "2025-06"}
	rng, err := f.resolve()
	require.NoError(t, err)
	assert.Len(t, rng.Periods(), 4)

	f = rangeFlags{year: 2025}
	rng, err = f.resolve()
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Year: 2025, Month: 1}, rng.From)
	assert.Equal(t, domain.Period{Year: 2025, Month: 12}, rng.To)

	f = rangeFlags{}
	rng, err = f.resolve()
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), rng.From.Year)

	f = rangeFlags{from: "2025-06", to: "2025-03"}
	_, err = f.resolve()
	assert.Error(t, err)

	f = rangeFlags{from: "2025-03"}
	_, err = f.resolve()
	assert.Error(t, err)
}
