package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/apperrors"
)

func TestNewLocationRequiresName(t *testing.T) {
	if _, err := NewLocation("", Address{City: "Eisenstadt"}); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}

	location, err := NewLocation("Hauptplatz", Address{City: "Eisenstadt"})
	if err != nil {
		t.Fatalf("new location: %v", err)
	}
	if location.ID != uuid.Nil {
		t.Errorf("id must stay unset until persisted, got %v", location.ID)
	}
	if len(location.Events) != 0 {
		t.Errorf("expected empty events collection, got %d", len(location.Events))
	}
}

func TestAddEventLinksBothSides(t *testing.T) {
	location := &Location{ID: uuid.New(), Name: "Hauptplatz"}
	event := &Event{ID: uuid.New(), Title: "Frühjahrskonzert", Type: EventTypeConcert}

	location.AddEvent(event)

	if event.LocationID != location.ID {
		t.Errorf("event back-reference not set: got %v, want %v", event.LocationID, location.ID)
	}
	if event.Location != location {
		t.Errorf("event location pointer not set")
	}
	if !location.HasEvent(event) {
		t.Errorf("event not found in location collection")
	}
}

func TestRemoveEventClearsBackReference(t *testing.T) {
	location := &Location{ID: uuid.New(), Name: "Hauptplatz"}
	event := &Event{ID: uuid.New(), Title: "Frühjahrskonzert", Type: EventTypeConcert}
	other := &Event{ID: uuid.New(), Title: "Weinlesefest", Type: EventTypeSerenade}

	location.AddEvent(event)
	location.AddEvent(other)

	location.RemoveEvent(event)

	if event.LocationID != uuid.Nil {
		t.Errorf("back-reference not cleared: %v", event.LocationID)
	}
	if event.Location != nil {
		t.Errorf("location pointer not cleared")
	}
	if location.HasEvent(event) {
		t.Errorf("event still in collection after removal")
	}
	if !location.HasEvent(other) {
		t.Errorf("unrelated event was removed")
	}
}

func TestRemoveEventIsNoOpForNonMember(t *testing.T) {
	location := &Location{ID: uuid.New(), Name: "Hauptplatz"}
	member := &Event{ID: uuid.New(), Title: "Frühjahrskonzert"}
	stranger := &Event{ID: uuid.New(), Title: "Kirtag"}
	elsewhere := &Location{ID: uuid.New(), Name: "Schlosspark"}
	elsewhere.AddEvent(stranger)

	location.AddEvent(member)
	location.RemoveEvent(stranger)

	if !location.HasEvent(member) {
		t.Errorf("member event must survive a foreign removal")
	}
	if stranger.LocationID != elsewhere.ID {
		t.Errorf("foreign event back-reference must stay untouched, got %v", stranger.LocationID)
	}

	// nil must also be ignored
	location.RemoveEvent(nil)
	location.AddEvent(nil)
	if len(location.Events) != 1 {
		t.Errorf("nil event changed the collection: %d entries", len(location.Events))
	}
}

func TestUnpersistedEventsKeepDistinctMembership(t *testing.T) {
	location := &Location{Name: "Hauptplatz"}
	member := &Event{Title: "Frühjahrskonzert", Type: EventTypeConcert}
	stranger := &Event{Title: "Kirtag", Type: EventTypeOthers}

	location.AddEvent(member)
	if member.ID == uuid.Nil {
		t.Fatalf("AddEvent must assign an id to an unpersisted event")
	}
	if !location.HasEvent(member) {
		t.Fatalf("freshly added event not found in collection")
	}

	// A stranger that was never added shares no id with the member and
	// must not evict it, persisted or not.
	location.RemoveEvent(stranger)
	if !location.HasEvent(member) {
		t.Errorf("member event evicted by an unrelated unpersisted event")
	}
	if len(location.Events) != 1 {
		t.Errorf("collection changed by a foreign removal: %d entries", len(location.Events))
	}

	// An event with no id at all is never a member.
	blank := &Event{Title: "Frühschoppen"}
	if location.HasEvent(blank) {
		t.Errorf("event without an id reported as member")
	}
	location.RemoveEvent(blank)
	if len(location.Events) != 1 {
		t.Errorf("removal of an id-less event changed the collection: %d entries", len(location.Events))
	}
}
