package cli

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTUIDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(100, 30))
	d.DrainInit()
	return d
}

func TestTUI_FilterHomeShowsFields(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	d := newTUIDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "FILTERS")
	assert.Contains(t, view, "Section")
	assert.Contains(t, view, "Resource")
}

func TestTUI_CascadeSelectionNarrowsTeams(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)
	ctx := context.Background()

	// A second section with its own team must disappear from the team
	// options once the first section is selected.
	other := &domain.Section{Name: "Research"}
	require.NoError(t, app.Sections.Create(ctx, other))
	require.NoError(t, app.Teams.Create(ctx, &domain.Team{Name: "Lab", SectionID: other.ID}))

	d := newTUIDriver(t, app)

	// Cycle the section field to its first option (Engineering).
	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})

	view := d.View()
	assert.Contains(t, view, "Engineering")

	m := d.Model.(appModel)
	assert.NotEmpty(t, m.state.Scope.SectionID)
	require.Len(t, m.state.Options.Teams, 1)
	assert.Equal(t, "Platform", m.state.Options.Teams[0].Name)
}

func TestTUI_SelectionSurvivesDeactivation(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)
	ctx := context.Background()

	d := newTUIDriver(t, app)

	// Move to the resource field and select Ana Souza.
	d.PressDown()
	d.PressDown()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})

	m := d.Model.(appModel)
	resourceID := m.state.Scope.ResourceID
	require.NotEmpty(t, resourceID)

	// She goes inactive while still selected. The resolver synthesizes a
	// display entry, so the field keeps her name instead of the raw ID.
	require.NoError(t, app.Resources.Deactivate(ctx, resourceID))
	d.Send(refreshViewMsg{})

	view := d.View()
	assert.Contains(t, view, "Ana Souza")
	assert.NotContains(t, view, resourceID)
}

func TestTUI_StaleResolverResponseDropped(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	state := &SharedState{App: app}
	state.ScopeGen = 7
	fv := newFilterView(state)

	_, cmd := fv.Update(scopeResolvedMsg{
		gen: 3,
		resp: &contract.ScopeResponse{
			Options: contract.ScopeOptions{Sections: []contract.Option{{ID: "stale", Name: "Stale"}}},
		},
	})

	assert.Nil(t, cmd)
	assert.Empty(t, state.Options.Sections)
}

func TestTUI_DashboardNeedsResource(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	d := newTUIDriver(t, app)
	d.PressKey('d')

	assert.Contains(t, d.View(), "Select a resource first.")
}

func TestTUI_HeatmapFromSelectedTeam(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	d := newTUIDriver(t, app)

	// Select section, then team.
	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})
	d.PressDown()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})

	d.PressKey('h')

	view := d.View()
	assert.Contains(t, view, "TEAM HEATMAP: PLATFORM")
	assert.Contains(t, view, "Ana Souza")

	// Esc returns to the filters.
	d.PressEsc()
	assert.Contains(t, d.View(), "FILTERS")
}

func TestTUI_NewAllocationWizardCancel(t *testing.T) {
	app := testApp(t)
	seedOrg(t, app)

	d := newTUIDriver(t, app)

	d.PressKey('n')
	assert.Contains(t, d.View(), "Resource")

	d.PressEsc()
	assert.Contains(t, d.View(), "Cancelled.")
}

func TestPlanEditor_EditAndSave(t *testing.T) {
	app := testApp(t)
	_, _, resourceID, projectID := seedOrg(t, app)
	ctx := context.Background()

	resp, err := app.Allocations.Save(ctx, contract.SaveAllocationRequest{
		Allocation: domain.Allocation{
			ResourceID: resourceID,
			ProjectID:  projectID,
			StartDate:  mustDate(t, "2025-03-01"),
		},
		Plans: []domain.MonthlyPlan{
			{Period: domain.Period{Year: 2025, Month: 3}, PlannedHours: 100},
		},
		KeepPeriods: []domain.Period{{Year: 2025, Month: 3}},
	})
	require.NoError(t, err)

	state := &SharedState{App: app}
	view, err := newPlanEditorView(state, resp.AllocationID)
	require.NoError(t, err)

	d := teatest.New(t, view)
	d.DrainInit()

	// Add April and set its hours.
	d.PressKey('a')
	d.PressEnter()
	d.Type("80")
	d.PressEnter()
	d.PressKey('s')

	_, plans, err := app.Allocations.Get(ctx, resp.AllocationID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 80.0, plans[1].PlannedHours)
}

func TestPlanEditor_RejectsGarbageHours(t *testing.T) {
	app := testApp(t)
	_, _, resourceID, projectID := seedOrg(t, app)
	ctx := context.Background()

	resp, err := app.Allocations.Save(ctx, contract.SaveAllocationRequest{
		Allocation: domain.Allocation{
			ResourceID: resourceID,
			ProjectID:  projectID,
			StartDate:  mustDate(t, "2025-03-01"),
		},
	})
	require.NoError(t, err)

	state := &SharedState{App: app}
	view, err := newPlanEditorView(state, resp.AllocationID)
	require.NoError(t, err)

	d := teatest.New(t, view)
	d.DrainInit()

	d.PressEnter()
	d.Type("abc")
	d.PressEnter()

	assert.Contains(t, d.View(), "not a number")
}

func TestPlanEditor_RemoveRetractsMonth(t *testing.T) {
	app := testApp(t)
	_, _, resourceID, projectID := seedOrg(t, app)
	ctx := context.Background()

	resp, err := app.Allocations.Save(ctx, contract.SaveAllocationRequest{
		Allocation: domain.Allocation{
			ResourceID: resourceID,
			ProjectID:  projectID,
			StartDate:  mustDate(t, "2025-03-01"),
		},
		Plans: []domain.MonthlyPlan{
			{Period: domain.Period{Year: 2025, Month: 3}, PlannedHours: 100},
			{Period: domain.Period{Year: 2025, Month: 4}, PlannedHours: 80},
		},
		KeepPeriods: []domain.Period{{Year: 2025, Month: 3}, {Year: 2025, Month: 4}},
	})
	require.NoError(t, err)

	state := &SharedState{App: app}
	view, err := newPlanEditorView(state, resp.AllocationID)
	require.NoError(t, err)

	d := teatest.New(t, view)
	d.DrainInit()

	// Remove April (second row) and save.
	d.PressDown()
	d.PressKey('x')
	d.PressKey('s')

	_, plans, err := app.Allocations.Get(ctx, resp.AllocationID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, domain.Period{Year: 2025, Month: 3}, plans[0].Period)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}
