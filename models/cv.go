package models

import "time"

// CV is the singleton CV metadata row. The PDF itself lives in the object
// store; StorageKey is the opaque identifier used only for remote deletion.
type CV struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	FileName   string    `json:"fileName" db:"file_name" gorm:"type:text;not null"`
	FileURL    string    `json:"fileUrl" db:"file_url" gorm:"type:text;not null"`
	StorageKey string    `json:"-" db:"storage_key" gorm:"type:text;not null"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}

func (CV) TableName() string {
	return "cv_files"
}
