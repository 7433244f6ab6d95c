package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/dashboard-backend/models"
)

type TechRepo struct {
	db *gorm.DB
}

func NewTechRepo(db *gorm.DB) *TechRepo {
	return &TechRepo{db}
}

// FindAll returns all techs, newest first.
func (r *TechRepo) FindAll() ([]*models.Tech, error) {
	var techs []*models.Tech
	err := r.db.Order("created_at DESC").Find(&techs).Error
	return techs, err
}

// FindAllWithJoins returns all techs with their project join rows attached,
// used by the per-tech distribution charts.
func (r *TechRepo) FindAllWithJoins() ([]*models.Tech, error) {
	var techs []*models.Tech
	err := r.db.Preload("ProjectTechs").Find(&techs).Error
	return techs, err
}

// FindByID returns the tech with the given id, or nil when it does not exist.
func (r *TechRepo) FindByID(id uuid.UUID) (*models.Tech, error) {
	var tech models.Tech
	err := r.db.First(&tech, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

// Add inserts a new tech.
func (r *TechRepo) Add(tech *models.Tech) error {
	return r.db.Create(tech).Error
}

// Update replaces the tech's mutable fields.
func (r *TechRepo) Update(tech *models.Tech) error {
	return r.db.Model(&models.Tech{}).Where("id = ?", tech.ID).Updates(map[string]any{
		"name":       tech.Name,
		"updated_at": time.Now().UTC(),
	}).Error
}

// Delete removes the tech and any join rows pointing at it. Deleting an
// absent id is a no-op.
func (r *TechRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tech_id = ?", id).Delete(&models.ProjectTech{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tech{}, "id = ?", id).Error
	})
}

// Count returns the number of techs.
func (r *TechRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Tech{}).Count(&total).Error
	return total, err
}

// LatestUpdatedAt returns the most recent updated_at, or nil when the table is empty.
func (r *TechRepo) LatestUpdatedAt() (*time.Time, error) {
	var tech models.Tech
	err := r.db.Order("updated_at DESC").Select("updated_at").First(&tech).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tech.UpdatedAt, nil
}
