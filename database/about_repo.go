package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/dashboard-backend/models"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// FindAll returns all about entries, newest first.
func (r *AboutRepo) FindAll() ([]*models.About, error) {
	var entries []*models.About
	err := r.db.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// FindByID returns the entry with the given id, or nil when it does not exist.
func (r *AboutRepo) FindByID(id uuid.UUID) (*models.About, error) {
	var entry models.About
	err := r.db.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Add inserts a new about entry.
func (r *AboutRepo) Add(entry *models.About) error {
	return r.db.Create(entry).Error
}

// Update replaces the entry's mutable fields.
func (r *AboutRepo) Update(entry *models.About) error {
	return r.db.Model(&models.About{}).Where("id = ?", entry.ID).Updates(map[string]any{
		"location":   entry.Location,
		"content":    entry.Content,
		"image":      entry.Image,
		"curriculum": entry.Curriculum,
		"updated_at": time.Now().UTC(),
	}).Error
}

// Delete removes the entry. Deleting an absent id is a no-op.
func (r *AboutRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.About{}, "id = ?", id).Error
}

// Count returns the number of about entries.
func (r *AboutRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.About{}).Count(&total).Error
	return total, err
}

// LatestUpdatedAt returns the most recent updated_at, or nil when the table is empty.
func (r *AboutRepo) LatestUpdatedAt() (*time.Time, error) {
	var entry models.About
	err := r.db.Order("updated_at DESC").Select("updated_at").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry.UpdatedAt, nil
}
