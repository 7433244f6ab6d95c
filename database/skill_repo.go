package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/dashboard-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills, newest first.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("created_at DESC").Find(&skills).Error
	return skills, err
}

// FindByID returns the skill with the given id, or nil when it does not exist.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill.
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update replaces the skill's mutable fields.
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Model(&models.Skill{}).Where("id = ?", skill.ID).Updates(map[string]any{
		"icon":       skill.Icon,
		"name":       skill.Name,
		"updated_at": time.Now().UTC(),
	}).Error
}

// Delete removes the skill. Deleting an absent id is a no-op.
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

// Count returns the number of skills.
func (r *SkillRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Skill{}).Count(&total).Error
	return total, err
}

// LatestUpdatedAt returns the most recent updated_at, or nil when the table is empty.
func (r *SkillRepo) LatestUpdatedAt() (*time.Time, error) {
	var skill models.Skill
	err := r.db.Order("updated_at DESC").Select("updated_at").First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill.UpdatedAt, nil
}
