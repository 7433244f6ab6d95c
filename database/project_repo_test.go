package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/dashboard-backend/models"
)

func mustAddTech(t *testing.T, db Database, name string) models.Tech {
	t.Helper()
	tech := models.Tech{ID: uuid.New(), Name: name}
	require.NoError(t, db.TechRepo().Add(&tech))
	return tech
}

func newProject(title string) models.Project {
	return models.Project{
		ID:          uuid.New(),
		Title:       title,
		Description: "a project",
		Image:       "https://example.com/img.png",
		DemoURL:     "https://example.com",
		RepoURL:     "https://github.com/example/repo",
	}
}

func TestProjectAddAndFindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := db.ProjectRepo()

	techGo := mustAddTech(t, db, "Go")
	techReact := mustAddTech(t, db, "React")

	project := newProject("Portfolio")
	require.NoError(t, repo.Add(&project, []models.ProjectTech{
		{TechID: techReact.ID, Ordem: 2},
		{TechID: techGo.ID, Ordem: 1},
	}))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)

	got := projects[0]
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, "Portfolio", got.Title)

	// Techs come back ordered by ordem regardless of insertion order.
	require.Len(t, got.Techs, 2)
	assert.Equal(t, "Go", got.Techs[0].Tech.Name)
	assert.Equal(t, 1, got.Techs[0].Ordem)
	assert.Equal(t, "React", got.Techs[1].Tech.Name)
	assert.Equal(t, 2, got.Techs[1].Ordem)
}

func TestProjectFindAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := db.ProjectRepo()

	older := newProject("older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newProject("newer")
	newer.CreatedAt = time.Now()

	require.NoError(t, repo.Add(&older, nil))
	require.NoError(t, repo.Add(&newer, nil))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "newer", projects[0].Title)
	assert.Equal(t, "older", projects[1].Title)
}

func TestProjectFindByIDAbsent(t *testing.T) {
	db := setupTestDB(t)

	project, err := db.ProjectRepo().FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestProjectUpdateReplacesTechsWholesale(t *testing.T) {
	db := setupTestDB(t)
	repo := db.ProjectRepo()

	techA := mustAddTech(t, db, "A")
	techB := mustAddTech(t, db, "B")
	techC := mustAddTech(t, db, "C")

	project := newProject("Portfolio")
	require.NoError(t, repo.Add(&project, []models.ProjectTech{
		{TechID: techA.ID, Ordem: 1},
		{TechID: techB.ID, Ordem: 2},
	}))

	updated := project
	updated.Title = "Portfolio v2"
	require.NoError(t, repo.Update(&updated, []models.ProjectTech{
		{TechID: techC.ID, Ordem: 1},
	}))

	got, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Portfolio v2", got.Title)
	require.Len(t, got.Techs, 1, "no residual rows from the previous association set")
	assert.Equal(t, techC.ID, got.Techs[0].TechID)
	assert.Equal(t, 1, got.Techs[0].Ordem)

	// No orphan join rows left behind either.
	joins, err := db.ProjectTechRepo().FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, joins, 1)
	assert.Equal(t, "C", joins[0].Tech.Name)
}

func TestProjectUpdateLeavesOthersUntouched(t *testing.T) {
	db := setupTestDB(t)
	repo := db.ProjectRepo()

	tech := mustAddTech(t, db, "Go")

	first := newProject("first")
	second := newProject("second")
	require.NoError(t, repo.Add(&first, []models.ProjectTech{{TechID: tech.ID, Ordem: 1}}))
	require.NoError(t, repo.Add(&second, nil))

	updated := second
	updated.Description = "changed"
	require.NoError(t, repo.Update(&updated, nil))

	got, err := repo.FindByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "a project", got.Description)
	require.Len(t, got.Techs, 1)
}

func TestProjectDeleteRemovesJoinRows(t *testing.T) {
	db := setupTestDB(t)
	repo := db.ProjectRepo()

	tech := mustAddTech(t, db, "Go")
	project := newProject("Portfolio")
	require.NoError(t, repo.Add(&project, []models.ProjectTech{{TechID: tech.ID, Ordem: 1}}))

	require.NoError(t, repo.Delete(project.ID))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, projects)

	joins, err := db.ProjectTechRepo().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, joins)
}

func TestProjectDeleteAbsentIsNoOp(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.ProjectRepo().Delete(uuid.New()))
	// And again, still no error.
	require.NoError(t, db.ProjectRepo().Delete(uuid.New()))
}

func TestProjectCountAndLatestUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := db.ProjectRepo()

	latest, err := repo.LatestUpdatedAt()
	require.NoError(t, err)
	assert.Nil(t, latest, "empty collection has no latest update")

	project := newProject("Portfolio")
	require.NoError(t, repo.Add(&project, nil))

	total, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	latest, err = repo.LatestUpdatedAt()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.WithinDuration(t, time.Now(), *latest, time.Minute)
}
