package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a portfolio project entry
type Project struct {
	ID            uint                        `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Description   string                      `json:"description" db:"description" gorm:"type:text"`
	Technologies  datatypes.JSONSlice[string] `json:"technologies,omitempty" db:"technologies"`
	RepoLink      string                      `json:"repoLink" db:"repo_link" gorm:"type:text"`
	DemoLink      string                      `json:"demoLink" db:"demo_link" gorm:"type:text"`
	Image         string                      `json:"image" db:"image" gorm:"type:text"`
	ImagePublicID string                      `json:"imagePublicId" db:"image_public_id" gorm:"type:text"`
	Featured      bool                        `json:"featured" db:"featured"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time                   `json:"updatedAt" db:"updated_at"`
	DeletedAt     *time.Time                  `json:"deletedAt,omitempty" db:"deleted_at" gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}

// Touch refreshes the update timestamp. Called by the handler layer, not
// the store, whenever a partial update goes through.
func (p *Project) Touch(now time.Time) {
	p.UpdatedAt = now
}
