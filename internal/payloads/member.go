package payloads

import (
	"time"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type MemberRequest struct {
	FirstName   string            `json:"first_name" binding:"required,max=100"`
	LastName    string            `json:"last_name" binding:"required,max=100"`
	Instrument  models.Instrument `json:"instrument" binding:"required"`
	Section     models.Section    `json:"section" binding:"required"`
	AvatarURL   string            `json:"avatar_url" binding:"omitempty,url,max=255"`
	DateJoined  time.Time         `json:"date_joined"`
	Notes       string            `json:"notes"`
	PhoneNumber string            `json:"phone_number" binding:"omitempty,max=20"`
	Address     models.Address    `json:"address"`
}

type MemberResponse struct {
	ID          uuid.UUID         `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Instrument  models.Instrument `json:"instrument"`
	Section     models.Section    `json:"section"`
	AvatarURL   string            `json:"avatar_url"`
	DateJoined  time.Time         `json:"date_joined"`
	Notes       string            `json:"notes"`
	PhoneNumber string            `json:"phone_number"`
	Address     models.Address    `json:"address"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
