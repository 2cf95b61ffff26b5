package mappers

import (
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func GalleryToResponse(entity *models.Gallery) *payloads.GalleryResponse {
	if entity == nil {
		return nil
	}
	images := make([]payloads.ImageResponse, 0, len(entity.Images))
	for i := range entity.Images {
		images = append(images, *ImageToResponse(&entity.Images[i]))
	}
	return &payloads.GalleryResponse{
		ID:          entity.ID,
		Title:       entity.Title,
		GalleryDate: entity.GalleryDate,
		Slug:        entity.Slug,
		Images:      images,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func GalleryToEntity(request *payloads.GalleryRequest) *models.Gallery {
	if request == nil {
		return nil
	}
	return &models.Gallery{
		Title:       request.Title,
		GalleryDate: request.GalleryDate,
		Images:      []models.Image{},
	}
}

func UpdateGalleryEntity(entity *models.Gallery, request *payloads.GalleryRequest) {
	if entity == nil || request == nil {
		return
	}
	entity.Title = request.Title
	entity.GalleryDate = request.GalleryDate
}

func ImageToResponse(entity *models.Image) *payloads.ImageResponse {
	if entity == nil {
		return nil
	}
	return &payloads.ImageResponse{
		ID:            entity.ID,
		ImageURL:      entity.ImageURL,
		Author:        entity.Author,
		Filename:      entity.Filename,
		MimeType:      entity.MimeType,
		FileSizeBytes: entity.FileSizeBytes,
		UploadDate:    entity.UploadDate,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func ImageToEntity(request *payloads.ImageRequest) *models.Image {
	if request == nil {
		return nil
	}
	return &models.Image{
		ImageURL:   request.ImageURL,
		Author:     request.Author,
		UploadDate: request.UploadDate,
	}
}

func UpdateImageEntity(entity *models.Image, request *payloads.ImageRequest) {
	if entity == nil || request == nil {
		return
	}
	entity.ImageURL = request.ImageURL
	entity.Author = request.Author
	entity.UploadDate = request.UploadDate
}
