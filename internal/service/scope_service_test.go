package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeResolve_NarrowsBySection(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	secID, teamID, _, _ := orgFixture(t, r)

	// A second section with its own team must not leak into the scope.
	other := testutil.NewTestSection("Operations")
	require.NoError(t, r.sections.Create(ctx, other))
	otherTeam := testutil.NewTestTeam(other.ID, "Support")
	require.NoError(t, r.teams.Create(ctx, otherTeam))

	svc := NewScopeService(r.sections, r.teams, r.resources, r.projects)

	resp, err := svc.Resolve(ctx, contract.Scope{}.Set(contract.FieldSection, secID))
	require.NoError(t, err)

	assert.Len(t, resp.Options.Sections, 2, "sections list is never narrowed")
	require.Len(t, resp.Options.Teams, 1)
	assert.Equal(t, teamID, resp.Options.Teams[0].ID)
	assert.Len(t, resp.Options.Resources, 1)
	assert.Len(t, resp.Options.Projects, 1)
}

func TestScopeResolve_CascadeClearsDescendants(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	secID, teamID, resID, projID := orgFixture(t, r)

	svc := NewScopeService(r.sections, r.teams, r.resources, r.projects)

	scope := contract.Scope{SectionID: secID, TeamID: teamID, ResourceID: resID, ProjectID: projID}
	scope = scope.Set(contract.FieldSection, secID)

	resp, err := svc.Resolve(ctx, scope)
	require.NoError(t, err)
	assert.Empty(t, resp.Scope.TeamID)
	assert.Empty(t, resp.Scope.ResourceID)
	assert.Empty(t, resp.Scope.ProjectID)
}

func TestScopeResolve_ResourceBackfillsTeam(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	_, teamID, resID, _ := orgFixture(t, r)

	svc := NewScopeService(r.sections, r.teams, r.resources, r.projects)

	resp, err := svc.Resolve(ctx, contract.Scope{ResourceID: resID})
	require.NoError(t, err)
	assert.Equal(t, teamID, resp.Scope.TeamID, "resource selection must backfill its primary team")
}

func TestScopeResolve_InactiveResourcesExcluded(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	orgFixture(t, r)

	gone := testutil.NewTestResource("Former Employee", testutil.WithInactive())
	require.NoError(t, r.resources.Create(ctx, gone))

	svc := NewScopeService(r.sections, r.teams, r.resources, r.projects)

	resp, err := svc.Resolve(ctx, contract.Scope{})
	require.NoError(t, err)
	for _, opt := range resp.Options.Resources {
		assert.NotEqual(t, gone.ID, opt.ID)
	}
}

// brokenSectionRepo simulates a resolver backend outage.
type brokenSectionRepo struct{}

func (brokenSectionRepo) Create(context.Context, *domain.Section) error { return errors.New("down") }
func (brokenSectionRepo) GetByID(context.Context, string) (*domain.Section, error) {
	return nil, errors.New("down")
}
func (brokenSectionRepo) List(context.Context) ([]*domain.Section, error) {
	return nil, errors.New("down")
}
func (brokenSectionRepo) Update(context.Context, *domain.Section) error { return errors.New("down") }
func (brokenSectionRepo) Delete(context.Context, string) error          { return errors.New("down") }

func TestScopeResolve_DegradesToEmptyOptions(t *testing.T) {
	r := setupRepos(t)
	orgFixture(t, r)

	svc := NewScopeService(brokenSectionRepo{}, r.teams, r.resources, r.projects)

	resp, err := svc.Resolve(context.Background(), contract.Scope{})
	require.NoError(t, err, "resolver failures degrade, they never block the form")
	assert.Empty(t, resp.Options.Sections)
	assert.NotEmpty(t, resp.Options.Teams, "healthy levels still resolve")
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, contract.WarnScopeDegraded, resp.Warnings[0].Code)
}

func TestScopeResolve_SynthesizesSelectedArchivedProject(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	secID, _, _, _ := orgFixture(t, r)

	archived := testutil.NewTestProject(secID, "Legacy Migration",
		testutil.WithCompanyCode("LEGACY1"), testutil.WithProjectInactive())
	require.NoError(t, r.projects.Create(ctx, archived))

	svc := NewScopeService(r.sections, r.teams, r.resources, r.projects)

	// Unselected, the archived project stays out of the options.
	resp, err := svc.Resolve(ctx, contract.Scope{SectionID: secID})
	require.NoError(t, err)
	for _, opt := range resp.Options.Projects {
		require.NotEqual(t, archived.ID, opt.ID)
	}

	// Selected, it comes back as a display-only entry with its name.
	resp, err = svc.Resolve(ctx, contract.Scope{SectionID: secID, ProjectID: archived.ID})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Options.Projects)
	assert.Equal(t, archived.ID, resp.Options.Projects[0].ID)
	assert.Equal(t, "Legacy Migration", resp.Options.Projects[0].Name)
}

func TestScopeResolve_SynthesizesSelectedInactiveResource(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	orgFixture(t, r)

	gone := testutil.NewTestResource("Former Employee", testutil.WithInactive())
	require.NoError(t, r.resources.Create(ctx, gone))

	svc := NewScopeService(r.sections, r.teams, r.resources, r.projects)

	resp, err := svc.Resolve(ctx, contract.Scope{ResourceID: gone.ID})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Options.Resources)
	assert.Equal(t, gone.ID, resp.Options.Resources[0].ID)
	assert.Equal(t, "Former Employee", resp.Options.Resources[0].Name)
}
