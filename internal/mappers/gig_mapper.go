package mappers

import (
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func GigToResponse(entity *models.Gig) *payloads.GigResponse {
	if entity == nil {
		return nil
	}
	return &payloads.GigResponse{
		ID:          entity.ID,
		Title:       entity.Title,
		Description: entity.Description,
		Venue:       entity.Venue,
		Date:        entity.Date,
		ImageURL:    entity.ImageURL,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func GigToEntity(request *payloads.GigRequest) *models.Gig {
	if request == nil {
		return nil
	}
	return &models.Gig{
		Title:       request.Title,
		Description: request.Description,
		Venue:       request.Venue,
		Date:        request.Date,
		ImageURL:    request.ImageURL,
	}
}

func UpdateGigEntity(entity *models.Gig, request *payloads.GigRequest) {
	if entity == nil || request == nil {
		return
	}
	entity.Title = request.Title
	entity.Description = request.Description
	entity.Venue = request.Venue
	entity.Date = request.Date
	entity.ImageURL = request.ImageURL
}
