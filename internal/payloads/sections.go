package payloads

import (
	"time"

	"github.com/google/uuid"
)

type AboutRequest struct {
	AboutText     string `json:"about_text" binding:"required"`
	AboutImageURL string `json:"about_image_url" binding:"omitempty,url,max=500"`
}

type AboutResponse struct {
	ID            uuid.UUID `json:"id"`
	AboutText     string    `json:"about_text"`
	AboutImageURL string    `json:"about_image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WelcomeRequest struct {
	Title              string `json:"title" binding:"required,max=500"`
	SubTitle           string `json:"sub_title" binding:"required,max=1000"`
	ButtonText         string `json:"button_text" binding:"required,max=255"`
	BackgroundImageURL string `json:"background_image_url" binding:"required,url,max=500"`
}

type WelcomeResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	SubTitle           string    `json:"sub_title"`
	ButtonText         string    `json:"button_text"`
	BackgroundImageURL string    `json:"background_image_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
