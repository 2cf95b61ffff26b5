package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Image struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ImageURL      string    `gorm:"not null;size:500"`
	Author        string    `gorm:"size:255"`
	Filename      string    `gorm:"size:255"`
	MimeType      string    `gorm:"size:100"`
	FileSizeBytes int64
	UploadDate    time.Time
	GalleryID     uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (image *Image) BeforeCreate(tx *gorm.DB) (err error) {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	return
}
