package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/apperrors"
)

// Location is the owning side of the Location/Event relationship. Events are
// deleted together with their Location; an Event row without a Location must
// not exist. Name is intentionally not unique, so lookups by name return a
// slice.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	Address   Address   `gorm:"embedded"`
	Events    []Event   `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (location *Location) BeforeCreate(tx *gorm.DB) (err error) {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	return
}

// NewLocation builds an unpersisted Location with an empty events collection.
// The ID stays nil until the first save.
func NewLocation(name string, address Address) (*Location, error) {
	if name == "" {
		return nil, apperrors.ErrValidation
	}
	return &Location{
		Name:    name,
		Address: address,
		Events:  []Event{},
	}, nil
}

// AddEvent wires both sides of the bidirectional link: the event's
// back-reference and the location's collection change together. An event
// without an id gets one here, so membership is well-defined before the
// first persist; BeforeCreate keeps whatever is already set.
func (location *Location) AddEvent(event *Event) {
	if event == nil {
		return
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.LocationID = location.ID
	event.Location = location
	location.Events = append(location.Events, *event)
}

// RemoveEvent detaches the event from the collection and clears its
// back-reference. Events that are not members are ignored, and an event
// without an id cannot be a member of anything.
func (location *Location) RemoveEvent(event *Event) {
	if event == nil || event.ID == uuid.Nil {
		return
	}
	for i := range location.Events {
		if location.Events[i].ID == event.ID {
			location.Events = append(location.Events[:i], location.Events[i+1:]...)
			event.LocationID = uuid.Nil
			event.Location = nil
			return
		}
	}
}

// HasEvent reports membership by event ID.
func (location *Location) HasEvent(event *Event) bool {
	if event == nil || event.ID == uuid.Nil {
		return false
	}
	for i := range location.Events {
		if location.Events[i].ID == event.ID {
			return true
		}
	}
	return false
}
