package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/apperrors"
	"github.com/stadtkapelle/eisenstadt-backend/internal/helpers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/mappers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
	"github.com/stadtkapelle/eisenstadt-backend/internal/repository"
)

// The "about" and "welcome" sections are single-row resources: GET returns
// the current content, PUT creates it on first write and updates it after.

func GetAbout(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	about, err := repository.NewAboutRepository(db.(*gorm.DB)).Get()
	if err != nil {
		helpers.RespondWithAppError(c, err, "About section not found.")
		return
	}

	c.JSON(http.StatusOK, mappers.AboutToResponse(about))
}

func PutAbout(c *gin.Context) {
	var req payloads.AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	abouts := repository.NewAboutRepository(db.(*gorm.DB))

	about, err := abouts.Get()
	switch {
	case err == nil:
		mappers.UpdateAboutEntity(about, &req)
	case errors.Is(err, apperrors.ErrNotFound):
		about = mappers.AboutToEntity(&req)
	default:
		helpers.RespondWithAppError(c, err, "Error loading about section.")
		return
	}

	saved, err := abouts.Save(about)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Failed to save about section.")
		return
	}

	c.JSON(http.StatusOK, mappers.AboutToResponse(saved))
}

func GetWelcome(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	welcome, err := repository.NewWelcomeRepository(db.(*gorm.DB)).Get()
	if err != nil {
		helpers.RespondWithAppError(c, err, "Welcome section not found.")
		return
	}

	c.JSON(http.StatusOK, mappers.WelcomeToResponse(welcome))
}

func PutWelcome(c *gin.Context) {
	var req payloads.WelcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	welcomes := repository.NewWelcomeRepository(db.(*gorm.DB))

	welcome, err := welcomes.Get()
	switch {
	case err == nil:
		mappers.UpdateWelcomeEntity(welcome, &req)
	case errors.Is(err, apperrors.ErrNotFound):
		welcome = mappers.WelcomeToEntity(&req)
	default:
		helpers.RespondWithAppError(c, err, "Error loading welcome section.")
		return
	}

	saved, err := welcomes.Save(welcome)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Failed to save welcome section.")
		return
	}

	c.JSON(http.StatusOK, mappers.WelcomeToResponse(saved))
}
