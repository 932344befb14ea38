package models

import "time"

// Note is an entry on the notes list page.
type Note struct {
	ID        uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title     string     `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Content   string     `json:"content" db:"content" gorm:"type:text"`
	Pinned    bool       `json:"pinned" db:"pinned"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at" gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) Touch(now time.Time) {
	n.UpdatedAt = now
}
