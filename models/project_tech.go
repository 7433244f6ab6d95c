package models

import "github.com/google/uuid"

// ProjectTech links a project to a tech. Ordem is the caller-supplied display
// position inside the project's tech list. The whole set of rows for a project
// is rewritten on every project create/update, never diffed.
type ProjectTech struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index:idx_project_tech_project_id;uniqueIndex:idx_project_tech_unique;constraint:OnDelete:CASCADE"`
	TechID    uuid.UUID `json:"techId" gorm:"type:uuid;not null;uniqueIndex:idx_project_tech_unique"`
	Ordem     int       `json:"ordem" gorm:"not null;default:0"`

	Tech Tech `json:"tech,omitempty" gorm:"foreignKey:TechID;references:ID"`
}
