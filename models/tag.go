package models

import "time"

// Tag labels writings within the creative writing sub-app.
// Names are unique across the table.
type Tag struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex" validate:"required"`
	Type      string    `json:"type" db:"type" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}
