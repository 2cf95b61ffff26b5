package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/helpers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/mappers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
	"github.com/stadtkapelle/eisenstadt-backend/internal/repository"
)

func CreateGallery(c *gin.Context) {
	var req payloads.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	galleries := repository.NewGalleryRepository(db.(*gorm.DB))

	gallery := mappers.GalleryToEntity(&req)
	saved, err := galleries.Save(gallery)
	if err != nil {
		helpers.RespondWithAppError(c, err, "A gallery with this title already exists.")
		return
	}

	c.JSON(http.StatusCreated, mappers.GalleryToResponse(saved))
}

// GetGallery resolves by id, or by slug when the parameter is not a uuid.
func GetGallery(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	galleries := repository.NewGalleryRepository(db.(*gorm.DB))

	param := c.Param("id")
	if id, err := uuid.Parse(param); err == nil {
		gallery, err := galleries.FindByID(id)
		if err != nil {
			helpers.RespondWithAppError(c, err, "Gallery not found.")
			return
		}
		c.JSON(http.StatusOK, mappers.GalleryToResponse(gallery))
		return
	}

	gallery, err := galleries.FindBySlug(param)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Gallery not found.")
		return
	}
	c.JSON(http.StatusOK, mappers.GalleryToResponse(gallery))
}

func ListGalleries(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	galleries := repository.NewGalleryRepository(db.(*gorm.DB))

	found, err := galleries.FindAll()
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error retrieving galleries.")
		return
	}

	responses := make([]payloads.GalleryResponse, 0, len(found))
	for i := range found {
		responses = append(responses, *mappers.GalleryToResponse(&found[i]))
	}

	c.JSON(http.StatusOK, gin.H{"galleries": responses, "total": len(responses)})
}

func UpdateGallery(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gallery id.")
		return
	}

	var req payloads.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	galleries := repository.NewGalleryRepository(db.(*gorm.DB))

	gallery, err := galleries.FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Gallery not found.")
		return
	}

	mappers.UpdateGalleryEntity(gallery, &req)

	saved, err := galleries.Save(gallery)
	if err != nil {
		helpers.RespondWithAppError(c, err, "A gallery with this title already exists.")
		return
	}

	c.JSON(http.StatusOK, mappers.GalleryToResponse(saved))
}

// DeleteGallery removes the gallery and every image it owns.
func DeleteGallery(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gallery id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewGalleryRepository(db.(*gorm.DB)).Delete(id); err != nil {
		helpers.RespondWithAppError(c, err, "Failed to delete gallery.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery deleted successfully."})
}
