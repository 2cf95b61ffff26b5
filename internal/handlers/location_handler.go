package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/helpers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/mappers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
	"github.com/stadtkapelle/eisenstadt-backend/internal/repository"
)

func CreateLocation(c *gin.Context) {
	var req payloads.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	locations := repository.NewLocationRepository(db.(*gorm.DB))

	location := mappers.LocationToEntity(&req)
	saved, err := locations.Save(location)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Failed to create location.")
		return
	}

	c.JSON(http.StatusCreated, mappers.LocationToResponse(saved))
}

func GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid location id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	locations := repository.NewLocationRepository(db.(*gorm.DB))

	location, err := locations.FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Location not found.")
		return
	}

	c.JSON(http.StatusOK, mappers.LocationToResponse(location))
}

// ListLocations returns all locations, or every location with a given name
// when ?name= is present. Names are not unique, so the result is always a
// list.
func ListLocations(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	locations := repository.NewLocationRepository(db.(*gorm.DB))

	var (
		found []models.Location
		err   error
	)
	if name := c.Query("name"); name != "" {
		found, err = locations.FindByName(name)
	} else {
		found, err = locations.FindAll()
	}
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error retrieving locations.")
		return
	}

	responses := make([]payloads.LocationResponse, 0, len(found))
	for i := range found {
		responses = append(responses, *mappers.LocationToResponse(&found[i]))
	}

	c.JSON(http.StatusOK, gin.H{"locations": responses, "total": len(responses)})
}

// SearchLocationsByAddress matches locations on the full address. At most
// one match is expected in practice, but zero or more are returned.
func SearchLocationsByAddress(c *gin.Context) {
	address := models.Address{
		Street:       c.Query("street"),
		StreetNumber: c.Query("street_number"),
		PostalCode:   c.Query("postal_code"),
		City:         c.Query("city"),
		Country:      c.Query("country"),
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	locations := repository.NewLocationRepository(db.(*gorm.DB))

	found, err := locations.FindByAddress(address)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error retrieving locations.")
		return
	}

	responses := make([]payloads.LocationResponse, 0, len(found))
	for i := range found {
		responses = append(responses, *mappers.LocationToResponse(&found[i]))
	}

	c.JSON(http.StatusOK, gin.H{"locations": responses, "total": len(responses)})
}

func UpdateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid location id.")
		return
	}

	var req payloads.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	locations := repository.NewLocationRepository(db.(*gorm.DB))

	location, err := locations.FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Location not found.")
		return
	}

	mappers.UpdateLocationEntity(location, &req)

	saved, err := locations.Save(location)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Failed to update location.")
		return
	}

	c.JSON(http.StatusOK, mappers.LocationToResponse(saved))
}

// DeleteLocation cascades: the location's events are removed with it.
func DeleteLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid location id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	locations := repository.NewLocationRepository(db.(*gorm.DB))

	if err := locations.Delete(id); err != nil {
		helpers.RespondWithAppError(c, err, "Failed to delete location.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully."})
}
