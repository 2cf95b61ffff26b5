package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventType string

const (
	EventTypeGig         EventType = "GIG"
	EventTypeConcert     EventType = "CONCERT"
	EventTypeMorningPint EventType = "MORNING_PINT"
	EventTypeEveningPint EventType = "EVENING_PINT"
	EventTypeSerenade    EventType = "SERENADE"
	EventTypeOthers      EventType = "OTHERS"
)

// Event always belongs to exactly one Location. The back-reference and the
// owning collection are kept in sync through Location.AddEvent/RemoveEvent.
// Title is unique across all events; the constraint is enforced on save.
type Event struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Title         string    `gorm:"not null;unique"`
	Description   string
	Date          time.Time
	EventImageURL string    `gorm:"size:500"`
	Type          EventType `gorm:"not null"`
	LocationID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Location      *Location `gorm:"foreignKey:LocationID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
