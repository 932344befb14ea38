package models

import "time"

// GalleryItem is a photo in the gallery. LocationID and DeviceID are bare
// references to photo_locations / photo_devices rows, without enforced
// referential integrity.
type GalleryItem struct {
	ID            uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"title" db:"title" gorm:"type:text"`
	Image         string     `json:"image" db:"image" gorm:"type:text;not null" validate:"required"`
	ImagePublicID string     `json:"imagePublicId" db:"image_public_id" gorm:"type:text"`
	LocationID    int64      `json:"locationId" db:"location_id"`
	DeviceID      int64      `json:"deviceId" db:"device_id"`
	TakenAt       *time.Time `json:"takenAt,omitempty" db:"taken_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}
