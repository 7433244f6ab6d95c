package models

import (
	"time"

	"github.com/google/uuid"
)

// About holds the profile text shown on the portfolio's about section. The
// dashboard treats it as a list even though only one record exists in practice.
type About struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Location   string    `json:"location" gorm:"type:text;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Image      string    `json:"image" gorm:"type:text;not null"`
	Curriculum string    `json:"curriculum" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
