// Package mappers converts between persisted entities and the payload shapes
// used at the HTTP boundary. Every mapper follows the same contract: a nil
// input maps to a nil output (not an error), ToEntity leaves identity and
// audit timestamps unset for the persistence layer to assign, and
// UpdateEntity overwrites mutable fields in place without ever touching the
// id or audit fields. Mappers do no I/O and no validation beyond nil checks.
package mappers

import (
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func LocationToResponse(entity *models.Location) *payloads.LocationResponse {
	if entity == nil {
		return nil
	}
	return &payloads.LocationResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		Address:   entity.Address,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func LocationToEntity(request *payloads.LocationRequest) *models.Location {
	if request == nil {
		return nil
	}
	return &models.Location{
		Name:    request.Name,
		Address: request.Address,
		Events:  []models.Event{},
	}
}

func UpdateLocationEntity(entity *models.Location, request *payloads.LocationRequest) {
	if entity == nil || request == nil {
		return
	}
	entity.Name = request.Name
	entity.Address = request.Address
}
