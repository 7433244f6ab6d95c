package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry with an ordered set of technologies attached
// through ProjectTech join rows.
type Project struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string        `json:"title" gorm:"type:text;not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Image       string        `json:"image" gorm:"type:text;not null"`
	DemoURL     string        `json:"demoUrl" gorm:"type:text;not null"`
	RepoURL     string        `json:"repoUrl" gorm:"type:text;not null"`
	IsFeatured  bool          `json:"isFeatured" gorm:"not null;default:false"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Techs       []ProjectTech `json:"projectTechs,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TechNames is the display-only projection some frontend variants consume.
// It is derived from the join rows and never accepted as input.
func (p Project) TechNames() []string {
	names := make([]string, 0, len(p.Techs))
	for _, pt := range p.Techs {
		names = append(names, pt.Tech.Name)
	}
	return names
}
