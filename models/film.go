package models

import "time"

// Film is an entry on the films list page.
type Film struct {
	ID        uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title     string     `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Director  string     `json:"director" db:"director" gorm:"type:text"`
	Year      int        `json:"year" db:"year"`
	Rating    int        `json:"rating" db:"rating" validate:"min=0,max=10"`
	Watched   bool       `json:"watched" db:"watched"`
	Review    string     `json:"review" db:"review" gorm:"type:text"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at" gorm:"index"`
}

func (Film) TableName() string {
	return "films"
}
