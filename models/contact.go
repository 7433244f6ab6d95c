package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an external profile link (GitHub, LinkedIn, email and so on).
type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Icon      string    `json:"icon" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	User      string    `json:"user" gorm:"type:text;not null"`
	Link      string    `json:"link" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
