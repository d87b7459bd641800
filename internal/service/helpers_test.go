package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
	"github.com/ricardofreitas/staffing/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	database    *sql.DB
	sections    *repository.SQLiteSectionRepo
	teams       *repository.SQLiteTeamRepo
	resources   *repository.SQLiteResourceRepo
	projects    *repository.SQLiteProjectRepo
	allocations *repository.SQLiteAllocationRepo
	plans       *repository.SQLiteMonthlyPlanRepo
	tracked     *repository.SQLiteTrackedHoursRepo
	capacity    *repository.SQLiteCapacityRepo
	uow         db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		database:    database,
		sections:    repository.NewSQLiteSectionRepo(database),
		teams:       repository.NewSQLiteTeamRepo(database),
		resources:   repository.NewSQLiteResourceRepo(database),
		projects:    repository.NewSQLiteProjectRepo(database),
		allocations: repository.NewSQLiteAllocationRepo(database),
		plans:       repository.NewSQLiteMonthlyPlanRepo(database),
		tracked:     repository.NewSQLiteTrackedHoursRepo(database),
		capacity:    repository.NewSQLiteCapacityRepo(database),
		uow:         testutil.NewTestUoW(database),
	}
}

// orgFixture seeds one section/team/resource/project chain and returns
// their IDs in creation order.
func orgFixture(t *testing.T, r testRepos) (sectionID, teamID, resourceID, projectID string) {
	t.Helper()
	ctx := context.Background()

	sec := testutil.NewTestSection("Engineering")
	require.NoError(t, r.sections.Create(ctx, sec))
	team := testutil.NewTestTeam(sec.ID, "Platform")
	require.NoError(t, r.teams.Create(ctx, team))
	res := testutil.NewTestResource("Ana Souza", testutil.WithTeamID(team.ID))
	require.NoError(t, r.resources.Create(ctx, res))
	proj := testutil.NewTestProject(sec.ID, "Customer Portal", testutil.WithCompanyCode("PORTAL1"))
	require.NoError(t, r.projects.Create(ctx, proj))

	return sec.ID, team.ID, res.ID, proj.ID
}

func seedAllocation(t *testing.T, r testRepos, resourceID, projectID string, opts ...testutil.AllocationOption) *domain.Allocation {
	t.Helper()
	alloc := testutil.NewTestAllocation(resourceID, projectID, opts...)
	require.NoError(t, r.allocations.Create(context.Background(), alloc))
	return alloc
}
