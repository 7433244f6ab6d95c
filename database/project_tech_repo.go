package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/dashboard-backend/models"
)

type ProjectTechRepo struct {
	db *gorm.DB
}

func NewProjectTechRepo(db *gorm.DB) *ProjectTechRepo {
	return &ProjectTechRepo{db}
}

// FindAll returns every join row with its tech attached, for the usage charts.
func (r *ProjectTechRepo) FindAll() ([]*models.ProjectTech, error) {
	var rows []*models.ProjectTech
	err := r.db.Preload("Tech").Find(&rows).Error
	return rows, err
}

// FindByProject returns a project's join rows in display order.
func (r *ProjectTechRepo) FindByProject(projectID uuid.UUID) ([]*models.ProjectTech, error) {
	var rows []*models.ProjectTech
	err := r.db.Preload("Tech").Where("project_id = ?", projectID).Order("ordem ASC").Find(&rows).Error
	return rows, err
}
