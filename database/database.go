package database

import (
	"gorm.io/gorm"

	"github.com/devfolio/dashboard-backend/models"
)

type Database struct {
	aboutRepo       *AboutRepo
	projectRepo     *ProjectRepo
	techRepo        *TechRepo
	projectTechRepo *ProjectTechRepo
	skillRepo       *SkillRepo
	contactRepo     *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		aboutRepo:       NewAboutRepo(db),
		projectRepo:     NewProjectRepo(db),
		techRepo:        NewTechRepo(db),
		projectTechRepo: NewProjectTechRepo(db),
		skillRepo:       NewSkillRepo(db),
		contactRepo:     NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) AboutRepo() *AboutRepo {
	return d.aboutRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TechRepo() *TechRepo {
	return d.techRepo
}

func (d Database) ProjectTechRepo() *ProjectTechRepo {
	return d.projectTechRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// AutoMigrate creates or updates the schema for every dashboard table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.About{},
		&models.Tech{},
		&models.Project{},
		&models.ProjectTech{},
		&models.Skill{},
		&models.Contact{},
	)
}
