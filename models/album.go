package models

import (
	"time"

	"gorm.io/datatypes"
)

// Album groups writings into an ordered collection. ItemIDs holds bare
// writing ids; the array order defines display order and is stored verbatim.
type Album struct {
	ID            uint                       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name          string                     `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Description   string                     `json:"description" db:"description" gorm:"type:text"`
	CoverImage    string                     `json:"coverImage" db:"cover_image" gorm:"type:text"`
	CoverPublicID string                     `json:"coverPublicId" db:"cover_public_id" gorm:"type:text"`
	ItemIDs       datatypes.JSONSlice[int64] `json:"itemIds" db:"item_ids"`
	CreatedAt     time.Time                  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time                  `json:"updatedAt" db:"updated_at"`
}

func (Album) TableName() string {
	return "albums"
}

func (a *Album) Touch(now time.Time) {
	a.UpdatedAt = now
}
