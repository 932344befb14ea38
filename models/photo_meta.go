package models

import "time"

// PhotoLocation is a place gallery photos were taken at.
type PhotoLocation struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Country   string    `json:"country" db:"country" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (PhotoLocation) TableName() string {
	return "photo_locations"
}

// PhotoDevice is a camera or phone gallery photos were taken with.
type PhotoDevice struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (PhotoDevice) TableName() string {
	return "photo_devices"
}
