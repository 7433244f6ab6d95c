package models

import (
	"time"

	"github.com/google/uuid"
)

// Tech is a technology referenced by projects via ProjectTech join rows.
type Tech struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" gorm:"type:text;not null;unique"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectTechs []ProjectTech `json:"projectTechs,omitempty" gorm:"foreignKey:TechID;references:ID"`
}
