// Package payloads holds the request and response shapes used at the HTTP
// boundary. Requests carry binding tags enforced by gin before a mapper ever
// sees them; responses additionally expose read-only fields such as ids and
// timestamps that requests never carry.
package payloads

import (
	"time"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type LocationRequest struct {
	Name    string         `json:"name" binding:"required,max=255"`
	Address models.Address `json:"address"`
}

type LocationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Address   models.Address `json:"address"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
