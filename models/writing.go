package models

import (
	"time"

	"gorm.io/datatypes"
)

// Writing represents a creative writing piece (poem, prose, essay)
type Writing struct {
	ID        uint                       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title     string                     `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Content   string                     `json:"content" db:"content" gorm:"type:text"`
	Excerpt   string                     `json:"excerpt" db:"excerpt" gorm:"type:text"`
	TagIDs    datatypes.JSONSlice[int64] `json:"tagIds,omitempty" db:"tag_ids"`
	Published bool                       `json:"published" db:"published"`
	CreatedAt time.Time                  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time                  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time                 `json:"deletedAt,omitempty" db:"deleted_at" gorm:"index"`
}

func (Writing) TableName() string {
	return "writings"
}

func (w *Writing) Touch(now time.Time) {
	w.UpdatedAt = now
}
