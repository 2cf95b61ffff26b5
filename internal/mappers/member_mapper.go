package mappers

import (
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func MemberToResponse(entity *models.Member) *payloads.MemberResponse {
	if entity == nil {
		return nil
	}
	return &payloads.MemberResponse{
		ID:          entity.ID,
		FirstName:   entity.FirstName,
		LastName:    entity.LastName,
		Instrument:  entity.Instrument,
		Section:     entity.Section,
		AvatarURL:   entity.AvatarURL,
		DateJoined:  entity.DateJoined,
		Notes:       entity.Notes,
		PhoneNumber: entity.PhoneNumber,
		Address:     entity.Address,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func MemberToEntity(request *payloads.MemberRequest) *models.Member {
	if request == nil {
		return nil
	}
	return &models.Member{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Instrument:  request.Instrument,
		Section:     request.Section,
		AvatarURL:   request.AvatarURL,
		DateJoined:  request.DateJoined,
		Notes:       request.Notes,
		PhoneNumber: request.PhoneNumber,
		Address:     request.Address,
	}
}

// UpdateMemberEntity never touches DeletedAt; soft deletion goes through the
// repository, not through a request payload.
func UpdateMemberEntity(entity *models.Member, request *payloads.MemberRequest) {
	if entity == nil || request == nil {
		return
	}
	entity.FirstName = request.FirstName
	entity.LastName = request.LastName
	entity.Instrument = request.Instrument
	entity.Section = request.Section
	entity.AvatarURL = request.AvatarURL
	entity.DateJoined = request.DateJoined
	entity.Notes = request.Notes
	entity.PhoneNumber = request.PhoneNumber
	entity.Address = request.Address
}
