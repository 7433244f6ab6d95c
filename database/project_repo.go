package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/dashboard-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// withOrderedTechs preloads the join rows sorted by their display position,
// together with the tech each row points at.
func withOrderedTechs(db *gorm.DB) *gorm.DB {
	return db.Preload("Techs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("ordem ASC")
	}).Preload("Techs.Tech")
}

// FindAll returns all projects, newest first, with their ordered techs.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := withOrderedTechs(r.db).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns the project with the given id, or nil when it does not exist.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := withOrderedTechs(r.db).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project together with its join rows in one transaction.
func (r *ProjectRepo) Add(project *models.Project, techs []models.ProjectTech) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		project.Techs = nil // join rows are written explicitly below
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return createJoinRows(tx, project.ID, techs)
	})
}

// Update saves the project's mutable fields and rewrites its entire tech
// association set. Delete-all then insert-all, inside one transaction so the
// swap is atomic to readers.
func (r *ProjectRepo) Update(project *models.Project, techs []models.ProjectTech) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"title":       project.Title,
			"description": project.Description,
			"image":       project.Image,
			"demo_url":    project.DemoURL,
			"repo_url":    project.RepoURL,
			"is_featured": project.IsFeatured,
			"updated_at":  time.Now().UTC(),
		}
		if err := tx.Model(&models.Project{}).Where("id = ?", project.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectTech{}).Error; err != nil {
			return err
		}
		return createJoinRows(tx, project.ID, techs)
	})
}

// Delete removes a project and its join rows. Deleting an absent id is a no-op.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTech{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// Count returns the number of projects.
func (r *ProjectRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Project{}).Count(&total).Error
	return total, err
}

// LatestUpdatedAt returns the most recent updated_at, or nil when the table is empty.
func (r *ProjectRepo) LatestUpdatedAt() (*time.Time, error) {
	var project models.Project
	err := r.db.Order("updated_at DESC").Select("updated_at").First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project.UpdatedAt, nil
}

func createJoinRows(tx *gorm.DB, projectID uuid.UUID, techs []models.ProjectTech) error {
	if len(techs) == 0 {
		return nil
	}
	rows := make([]models.ProjectTech, len(techs))
	for i, t := range techs {
		rows[i] = models.ProjectTech{
			ID:        uuid.New(),
			ProjectID: projectID,
			TechID:    t.TechID,
			Ordem:     t.Ordem,
		}
	}
	return tx.Create(&rows).Error
}
