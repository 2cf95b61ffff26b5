package mappers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func TestMemberMapperNilSafety(t *testing.T) {
	if MemberToResponse(nil) != nil {
		t.Errorf("nil entity must map to nil response")
	}
	if MemberToEntity(nil) != nil {
		t.Errorf("nil request must map to nil entity")
	}
	entity := &models.Member{FirstName: "Franz"}
	UpdateMemberEntity(entity, nil)
	UpdateMemberEntity(nil, &payloads.MemberRequest{FirstName: "Josef"})
	if entity.FirstName != "Franz" {
		t.Errorf("nil update mutated the entity")
	}
}

func TestMemberRoundTripPreservesSharedFields(t *testing.T) {
	request := &payloads.MemberRequest{
		FirstName:   "Franz",
		LastName:    "Gruber",
		Instrument:  models.InstrumentFluegelhorn,
		Section:     models.SectionHighBrass,
		AvatarURL:   "https://example.com/franz.jpg",
		DateJoined:  time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber: "+436641234567",
		Address:     models.Address{City: "Eisenstadt", PostalCode: "7000"},
	}

	response := MemberToResponse(MemberToEntity(request))

	if response.FirstName != request.FirstName || response.LastName != request.LastName {
		t.Errorf("name lost in round trip")
	}
	if response.Instrument != request.Instrument || response.Section != request.Section {
		t.Errorf("instrument/section lost in round trip")
	}
	if response.Address != request.Address {
		t.Errorf("address lost in round trip: %+v", response.Address)
	}
}

func TestUpdateMemberEntityNeverTouchesDeletedAt(t *testing.T) {
	deleted := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	entity := &models.Member{
		ID:        uuid.New(),
		FirstName: "Franz",
		LastName:  "Gruber",
		DeletedAt: &deleted,
	}

	UpdateMemberEntity(entity, &payloads.MemberRequest{
		FirstName:  "Josef",
		LastName:   "Haydn",
		Instrument: models.InstrumentTrumpet,
		Section:    models.SectionHighBrass,
	})

	if entity.DeletedAt == nil || !entity.DeletedAt.Equal(deleted) {
		t.Errorf("soft-delete timestamp changed through the mapper")
	}
	if !entity.IsDeleted() {
		t.Errorf("deleted member reported as active")
	}
}
