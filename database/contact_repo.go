package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/dashboard-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns all contacts, newest first.
func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// FindByID returns the contact with the given id, or nil when it does not exist.
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Add inserts a new contact.
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Update replaces the contact's mutable fields.
func (r *ContactRepo) Update(contact *models.Contact) error {
	return r.db.Model(&models.Contact{}).Where("id = ?", contact.ID).Updates(map[string]any{
		"icon":       contact.Icon,
		"name":       contact.Name,
		"user":       contact.User,
		"link":       contact.Link,
		"updated_at": time.Now().UTC(),
	}).Error
}

// Delete removes the contact. Deleting an absent id is a no-op.
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}

// Count returns the number of contacts.
func (r *ContactRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Contact{}).Count(&total).Error
	return total, err
}

// LatestUpdatedAt returns the most recent updated_at, or nil when the table is empty.
func (r *ContactRepo) LatestUpdatedAt() (*time.Time, error) {
	var contact models.Contact
	err := r.db.Order("updated_at DESC").Select("updated_at").First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact.UpdatedAt, nil
}
