package mappers

import (
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func EventToResponse(entity *models.Event) *payloads.EventResponse {
	if entity == nil {
		return nil
	}
	response := &payloads.EventResponse{
		ID:            entity.ID,
		Title:         entity.Title,
		Description:   entity.Description,
		Date:          entity.Date,
		EventImageURL: entity.EventImageURL,
		Type:          entity.Type,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
	if entity.Location != nil {
		response.LocationName = entity.Location.Name
	}
	return response
}

// EventToEntity resolves the location outside the mapper; the caller passes
// the already-loaded Location so the back-reference is set on construction.
func EventToEntity(request *payloads.EventRequest, location *models.Location) *models.Event {
	if request == nil {
		return nil
	}
	entity := &models.Event{
		Title:         request.Title,
		Description:   request.Description,
		Date:          request.Date,
		EventImageURL: request.EventImageURL,
		Type:          request.Type,
	}
	if location != nil {
		entity.Location = location
		entity.LocationID = location.ID
	}
	return entity
}

func UpdateEventEntity(entity *models.Event, request *payloads.EventRequest, location *models.Location) {
	if entity == nil || request == nil {
		return
	}
	entity.Title = request.Title
	entity.Description = request.Description
	entity.Date = request.Date
	entity.EventImageURL = request.EventImageURL
	entity.Type = request.Type
	if location != nil {
		entity.Location = location
		entity.LocationID = location.ID
	}
}
