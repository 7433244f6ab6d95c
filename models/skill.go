package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a stack entry shown on the skills page. Kept separate from Tech:
// skills describe the author, techs tag projects.
type Skill struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Icon      string    `json:"icon" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
