package mappers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func TestLocationMapperNilSafety(t *testing.T) {
	if LocationToResponse(nil) != nil {
		t.Errorf("nil entity must map to nil response")
	}
	if LocationToEntity(nil) != nil {
		t.Errorf("nil request must map to nil entity")
	}
	// both no-op variants must leave the entity untouched
	entity := &models.Location{Name: "Hauptplatz"}
	UpdateLocationEntity(entity, nil)
	if entity.Name != "Hauptplatz" {
		t.Errorf("UpdateLocationEntity(entity, nil) mutated the entity")
	}
	UpdateLocationEntity(nil, &payloads.LocationRequest{Name: "Schlosspark"})
}

func TestLocationRoundTripPreservesSharedFields(t *testing.T) {
	request := &payloads.LocationRequest{
		Name: "Hauptplatz",
		Address: models.Address{
			Street:       "Hauptstraße",
			StreetNumber: "1",
			PostalCode:   "7000",
			City:         "Eisenstadt",
			Country:      "Austria",
		},
	}

	entity := LocationToEntity(request)
	if entity.ID != uuid.Nil {
		t.Errorf("ToEntity must leave the id unset, got %v", entity.ID)
	}
	if !entity.CreatedAt.IsZero() || !entity.UpdatedAt.IsZero() {
		t.Errorf("ToEntity must leave audit timestamps unset")
	}

	response := LocationToResponse(entity)
	if response.Name != request.Name {
		t.Errorf("name lost in round trip: %q", response.Name)
	}
	if response.Address != request.Address {
		t.Errorf("address lost in round trip: %+v", response.Address)
	}
}

func TestUpdateLocationEntityKeepsIdentityAndAudit(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	entity := &models.Location{
		ID:        id,
		Name:      "Hauptplatz",
		Address:   models.Address{City: "Eisenstadt"},
		CreatedAt: created,
		UpdatedAt: created,
	}

	UpdateLocationEntity(entity, &payloads.LocationRequest{
		Name:    "Schlosspark",
		Address: models.Address{City: "Rust"},
	})

	if entity.ID != id {
		t.Errorf("identity changed during update")
	}
	if entity.CreatedAt != created {
		t.Errorf("audit field changed during update")
	}
	if entity.Name != "Schlosspark" || entity.Address.City != "Rust" {
		t.Errorf("mutable fields not overwritten: %+v", entity)
	}
}
