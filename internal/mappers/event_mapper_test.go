package mappers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func TestEventMapperNilSafety(t *testing.T) {
	if EventToResponse(nil) != nil {
		t.Errorf("nil entity must map to nil response")
	}
	if EventToEntity(nil, &models.Location{}) != nil {
		t.Errorf("nil request must map to nil entity")
	}
	entity := &models.Event{Title: "Frühjahrskonzert"}
	UpdateEventEntity(entity, nil, nil)
	if entity.Title != "Frühjahrskonzert" {
		t.Errorf("update with nil request mutated the entity")
	}
	UpdateEventEntity(nil, &payloads.EventRequest{Title: "Kirtag"}, nil)
}

func TestEventToEntitySetsBackReference(t *testing.T) {
	location := &models.Location{ID: uuid.New(), Name: "Hauptplatz"}
	request := &payloads.EventRequest{
		Title:        "Frühjahrskonzert",
		Description:  "Konzert am Hauptplatz",
		Date:         time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC),
		Type:         models.EventTypeConcert,
		LocationName: "Hauptplatz",
	}

	entity := EventToEntity(request, location)

	if entity.ID != uuid.Nil {
		t.Errorf("ToEntity must leave the id unset")
	}
	if entity.LocationID != location.ID || entity.Location != location {
		t.Errorf("back-reference not set on construction")
	}

	response := EventToResponse(entity)
	if response.Title != request.Title || response.Type != request.Type {
		t.Errorf("shared fields lost in round trip: %+v", response)
	}
	if response.Date != request.Date {
		t.Errorf("date lost in round trip: %v", response.Date)
	}
	if response.LocationName != "Hauptplatz" {
		t.Errorf("location name not derived from back-reference: %q", response.LocationName)
	}
}

func TestUpdateEventEntityMovesLocation(t *testing.T) {
	oldLocation := &models.Location{ID: uuid.New(), Name: "Hauptplatz"}
	newLocation := &models.Location{ID: uuid.New(), Name: "Schlosspark"}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	id := uuid.New()

	entity := &models.Event{
		ID:         id,
		Title:      "Frühjahrskonzert",
		Type:       models.EventTypeConcert,
		LocationID: oldLocation.ID,
		Location:   oldLocation,
		CreatedAt:  created,
	}

	UpdateEventEntity(entity, &payloads.EventRequest{
		Title:        "Sommerserenade",
		Type:         models.EventTypeSerenade,
		Date:         time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC),
		LocationName: "Schlosspark",
	}, newLocation)

	if entity.ID != id || entity.CreatedAt != created {
		t.Errorf("identity or audit field changed during update")
	}
	if entity.LocationID != newLocation.ID {
		t.Errorf("location not moved: %v", entity.LocationID)
	}
	if entity.Title != "Sommerserenade" || entity.Type != models.EventTypeSerenade {
		t.Errorf("mutable fields not overwritten: %+v", entity)
	}
}
