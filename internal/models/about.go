package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type About struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	AboutText     string    `gorm:"type:text;not null"`
	AboutImageURL string    `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (about *About) BeforeCreate(tx *gorm.DB) (err error) {
	if about.ID == uuid.Nil {
		about.ID = uuid.New()
	}
	return
}
