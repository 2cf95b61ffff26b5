package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gig predates the Location/Event pair and is kept flat: the venue is a
// free-text string, not a foreign key. Titles are unique, matched
// case-insensitively by the repository.
type Gig struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"not null;unique"`
	Description string
	Venue       string
	Date        time.Time
	ImageURL    string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (gig *Gig) BeforeCreate(tx *gorm.DB) (err error) {
	if gig.ID == uuid.Nil {
		gig.ID = uuid.New()
	}
	return
}
