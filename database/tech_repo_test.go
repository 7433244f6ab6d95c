package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/dashboard-backend/models"
)

func TestTechUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := db.TechRepo()

	tech := mustAddTech(t, db, "Reactt")

	tech.Name = "React"
	require.NoError(t, repo.Update(&tech))

	got, err := repo.FindByID(tech.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "React", got.Name)
}

func TestTechDeleteRemovesJoinRows(t *testing.T) {
	db := setupTestDB(t)

	tech := mustAddTech(t, db, "Go")
	project := newProject("Portfolio")
	require.NoError(t, db.ProjectRepo().Add(&project, []models.ProjectTech{{TechID: tech.ID, Ordem: 1}}))

	require.NoError(t, db.TechRepo().Delete(tech.ID))

	joins, err := db.ProjectTechRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, joins)

	got, err := db.TechRepo().FindByID(tech.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTechDeleteAbsentIsNoOp(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.TechRepo().Delete(uuid.New()))
}

func TestTechFindAllWithJoins(t *testing.T) {
	db := setupTestDB(t)

	used := mustAddTech(t, db, "Go")
	mustAddTech(t, db, "Rust")

	project := newProject("Portfolio")
	require.NoError(t, db.ProjectRepo().Add(&project, []models.ProjectTech{{TechID: used.ID, Ordem: 1}}))

	techs, err := db.TechRepo().FindAllWithJoins()
	require.NoError(t, err)
	require.Len(t, techs, 2)

	counts := map[string]int{}
	for _, tech := range techs {
		counts[tech.Name] = len(tech.ProjectTechs)
	}
	assert.Equal(t, 1, counts["Go"])
	assert.Equal(t, 0, counts["Rust"])
}

func TestContactCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := db.ContactRepo()

	contact := models.Contact{
		ID:   uuid.New(),
		Icon: "github",
		Name: "GitHub",
		User: "ada",
		Link: "https://github.com/ada",
	}
	require.NoError(t, repo.Add(&contact))

	contact.User = "lovelace"
	require.NoError(t, repo.Update(&contact))

	got, err := repo.FindByID(contact.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "lovelace", got.User)

	require.NoError(t, repo.Delete(contact.ID))

	contacts, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
