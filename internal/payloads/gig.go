package payloads

import (
	"time"

	"github.com/google/uuid"
)

type GigRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	Venue       string    `json:"venue" binding:"max=255"`
	Date        time.Time `json:"date" binding:"required"`
	ImageURL    string    `json:"image_url" binding:"omitempty,url,max=500"`
}

type GigResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
