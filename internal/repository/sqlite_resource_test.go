package repository

import (
	"context"
	"testing"

	"github.com/ricardofreitas/staffing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteResourceRepo(db)

	res := testutil.NewTestResource("Ana", testutil.WithDailyHours(6))
	res.Email = "ana@example.com"
	require.NoError(t, repo.Create(ctx, res))

	fetched, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", fetched.Name)
	assert.Equal(t, "ana@example.com", fetched.Email)
	assert.InDelta(t, 6, fetched.DailyHours, 0.001)
	assert.Nil(t, fetched.TeamID)
	assert.True(t, fetched.Active)
}

func TestResourceRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResourceRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceRepo_List_FiltersBySectionThroughTeam(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	sections := NewSQLiteSectionRepo(db)
	teams := NewSQLiteTeamRepo(db)
	repo := NewSQLiteResourceRepo(db)

	secA := testutil.NewTestSection("Engineering")
	secB := testutil.NewTestSection("Design")
	require.NoError(t, sections.Create(ctx, secA))
	require.NoError(t, sections.Create(ctx, secB))

	teamA := testutil.NewTestTeam(secA.ID, "Platform")
	teamB := testutil.NewTestTeam(secB.ID, "Brand")
	require.NoError(t, teams.Create(ctx, teamA))
	require.NoError(t, teams.Create(ctx, teamB))

	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("Ana", testutil.WithTeamID(teamA.ID))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("Bruno", testutil.WithTeamID(teamB.ID))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("Carla"))) // no team

	list, err := repo.List(ctx, ResourceFilter{SectionID: secA.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)

	// Unscoped listing returns everyone, ordered by name.
	list, err = repo.List(ctx, ResourceFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Carla", list[2].Name)
}

func TestResourceRepo_List_ActiveOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteResourceRepo(db)

	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("Ana")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("Bruno", testutil.WithInactive())))

	list, err := repo.List(ctx, ResourceFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)
}

func TestTeamRepo_ListBySection(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	sections := NewSQLiteSectionRepo(db)
	teams := NewSQLiteTeamRepo(db)

	secA := testutil.NewTestSection("Engineering")
	secB := testutil.NewTestSection("Design")
	require.NoError(t, sections.Create(ctx, secA))
	require.NoError(t, sections.Create(ctx, secB))

	require.NoError(t, teams.Create(ctx, testutil.NewTestTeam(secA.ID, "Platform")))
	require.NoError(t, teams.Create(ctx, testutil.NewTestTeam(secA.ID, "Apps")))
	require.NoError(t, teams.Create(ctx, testutil.NewTestTeam(secB.ID, "Brand")))

	list, err := teams.ListBySection(ctx, secA.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Ordered by name.
	assert.Equal(t, "Apps", list[0].Name)
	assert.Equal(t, "Platform", list[1].Name)
}

func TestSectionRepo_DeleteReferencedFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	sections := NewSQLiteSectionRepo(db)
	teams := NewSQLiteTeamRepo(db)

	sec := testutil.NewTestSection("Engineering")
	require.NoError(t, sections.Create(ctx, sec))
	require.NoError(t, teams.Create(ctx, testutil.NewTestTeam(sec.ID, "Platform")))

	// Sections referenced by teams are immutable roots.
	assert.Error(t, sections.Delete(ctx, sec.ID))
}

func TestProjectRepo_GetByCompanyCode_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	sections := NewSQLiteSectionRepo(db)
	projects := NewSQLiteProjectRepo(db)

	sec := testutil.NewTestSection("Engineering")
	require.NoError(t, sections.Create(ctx, sec))
	require.NoError(t, projects.Create(ctx,
		testutil.NewTestProject(sec.ID, "Portal", testutil.WithCompanyCode("ACME01"))))

	p, err := projects.GetByCompanyCode(ctx, "acme01")
	require.NoError(t, err)
	assert.Equal(t, "Portal", p.Name)

	_, err = projects.GetByCompanyCode(ctx, "NOPE99")
	assert.ErrorIs(t, err, ErrNotFound)
}
