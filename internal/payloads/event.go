package payloads

import (
	"time"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type EventRequest struct {
	Title         string           `json:"title" binding:"required,max=255"`
	Description   string           `json:"description"`
	Date          time.Time        `json:"date" binding:"required"`
	EventImageURL string           `json:"event_image_url" binding:"omitempty,url,max=500"`
	Type          models.EventType `json:"type" binding:"required,oneof=GIG CONCERT MORNING_PINT EVENING_PINT SERENADE OTHERS"`
	LocationName  string           `json:"location_name" binding:"required"`
}

type EventResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Date          time.Time        `json:"date"`
	EventImageURL string           `json:"event_image_url"`
	Type          models.EventType `json:"type"`
	LocationName  string           `json:"location_name"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
