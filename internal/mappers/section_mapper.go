package mappers

import (
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func AboutToResponse(entity *models.About) *payloads.AboutResponse {
	if entity == nil {
		return nil
	}
	return &payloads.AboutResponse{
		ID:            entity.ID,
		AboutText:     entity.AboutText,
		AboutImageURL: entity.AboutImageURL,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func AboutToEntity(request *payloads.AboutRequest) *models.About {
	if request == nil {
		return nil
	}
	return &models.About{
		AboutText:     request.AboutText,
		AboutImageURL: request.AboutImageURL,
	}
}

func UpdateAboutEntity(entity *models.About, request *payloads.AboutRequest) {
	if entity == nil || request == nil {
		return
	}
	entity.AboutText = request.AboutText
	entity.AboutImageURL = request.AboutImageURL
}

func WelcomeToResponse(entity *models.Welcome) *payloads.WelcomeResponse {
	if entity == nil {
		return nil
	}
	return &payloads.WelcomeResponse{
		ID:                 entity.ID,
		Title:              entity.Title,
		SubTitle:           entity.SubTitle,
		ButtonText:         entity.ButtonText,
		BackgroundImageURL: entity.BackgroundImageURL,
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
	}
}

func WelcomeToEntity(request *payloads.WelcomeRequest) *models.Welcome {
	if request == nil {
		return nil
	}
	return &models.Welcome{
		Title:              request.Title,
		SubTitle:           request.SubTitle,
		ButtonText:         request.ButtonText,
		BackgroundImageURL: request.BackgroundImageURL,
	}
}

func UpdateWelcomeEntity(entity *models.Welcome, request *payloads.WelcomeRequest) {
	if entity == nil || request == nil {
		return
	}
	entity.Title = request.Title
	entity.SubTitle = request.SubTitle
	entity.ButtonText = request.ButtonText
	entity.BackgroundImageURL = request.BackgroundImageURL
}
