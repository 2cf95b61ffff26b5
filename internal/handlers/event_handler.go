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

// resolveLocation finds the location an event request points at. Multiple
// locations may share a name; the first match wins, missing yields nil.
func resolveLocation(db *gorm.DB, name string) (*models.Location, error) {
	matches, err := repository.NewLocationRepository(db).FindByName(name)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func CreateEvent(c *gin.Context) {
	var req payloads.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	location, err := resolveLocation(gormDB, req.LocationName)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error resolving location.")
		return
	}
	if location == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Location not found.")
		return
	}

	event := mappers.EventToEntity(&req, location)
	saved, err := repository.NewEventRepository(gormDB).Save(event)
	if err != nil {
		helpers.RespondWithAppError(c, err, "An event with this title already exists.")
		return
	}

	c.JSON(http.StatusCreated, mappers.EventToResponse(saved))
}

func GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	event, err := repository.NewEventRepository(db.(*gorm.DB)).FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, mappers.EventToResponse(event))
}

// ListEvents lists every event, narrowed by ?title= (zero or one) or
// ?location= (all events at the named location).
func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)
	events := repository.NewEventRepository(gormDB)

	if title := c.Query("title"); title != "" {
		event, err := events.FindByTitle(title)
		if err != nil {
			helpers.RespondWithAppError(c, err, "Event not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"events": []payloads.EventResponse{*mappers.EventToResponse(event)}, "total": 1})
		return
	}

	var (
		found []models.Event
		err   error
	)
	if locationName := c.Query("location"); locationName != "" {
		location, lerr := resolveLocation(gormDB, locationName)
		if lerr != nil {
			helpers.RespondWithAppError(c, lerr, "Error resolving location.")
			return
		}
		if location == nil {
			helpers.RespondWithError(c, http.StatusNotFound, "Location not found.")
			return
		}
		found, err = events.FindAllByLocation(location)
	} else {
		found, err = events.FindAll()
	}
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error retrieving events.")
		return
	}

	responses := make([]payloads.EventResponse, 0, len(found))
	for i := range found {
		responses = append(responses, *mappers.EventToResponse(&found[i]))
	}

	c.JSON(http.StatusOK, gin.H{"events": responses, "total": len(responses)})
}

func UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	var req payloads.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)
	events := repository.NewEventRepository(gormDB)

	event, err := events.FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Event not found.")
		return
	}

	location, err := resolveLocation(gormDB, req.LocationName)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error resolving location.")
		return
	}
	if location == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Location not found.")
		return
	}

	mappers.UpdateEventEntity(event, &req, location)

	saved, err := events.Save(event)
	if err != nil {
		helpers.RespondWithAppError(c, err, "An event with this title already exists.")
		return
	}

	c.JSON(http.StatusOK, mappers.EventToResponse(saved))
}

func DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewEventRepository(db.(*gorm.DB)).Delete(id); err != nil {
		helpers.RespondWithAppError(c, err, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}
