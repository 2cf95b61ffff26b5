package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/helpers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/mappers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
	"github.com/stadtkapelle/eisenstadt-backend/internal/repository"
)

// CreateGig accepts multipart form data so a poster image can be uploaded
// together with the gig fields.
func CreateGig(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	venue := c.PostForm("venue")

	dateStr := c.PostForm("date")
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date format.")
		return
	}

	if title == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gigs := repository.NewGigRepository(db.(*gorm.DB))

	// the DB constraint only catches exact duplicates; titles are unique
	// regardless of casing
	taken, err := gigs.ExistsByTitle(title)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error checking gig title.")
		return
	}
	if taken {
		helpers.RespondWithError(c, http.StatusConflict, "A gig with this title already exists.")
		return
	}

	gig := &models.Gig{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Venue:       venue,
		Date:        date,
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		upload, err := helpers.UploadImage(c, imageFile, "gig_posters")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		gig.ImageURL = upload.Path
	}

	saved, err := gigs.Save(gig)
	if err != nil {
		helpers.RespondWithAppError(c, err, "A gig with this title already exists.")
		return
	}

	c.JSON(http.StatusCreated, mappers.GigToResponse(saved))
}

func GetGig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gig id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	gig, err := repository.NewGigRepository(db.(*gorm.DB)).FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Gig not found.")
		return
	}

	c.JSON(http.StatusOK, mappers.GigToResponse(gig))
}

// ListGigs supports ?title= (case-insensitive, zero or one), ?venue=, and
// a ?from=/?to= date window, with page/limit pagination over the result.
func ListGigs(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gigs := repository.NewGigRepository(db.(*gorm.DB))

	if title := c.Query("title"); title != "" {
		gig, err := gigs.FindByTitle(title)
		if err != nil {
			helpers.RespondWithAppError(c, err, "Gig not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"gigs": []payloads.GigResponse{*mappers.GigToResponse(gig)}, "total": 1})
		return
	}

	var (
		found []models.Gig
		err   error
	)
	fromStr, toStr := c.Query("from"), c.Query("to")
	switch {
	case fromStr != "" || toStr != "":
		if fromStr == "" || toStr == "" {
			helpers.RespondWithError(c, http.StatusBadRequest, "A date range needs both from and to.")
			return
		}
		var from, to time.Time
		from, err = time.Parse(time.RFC3339, fromStr)
		if err == nil {
			to, err = time.Parse(time.RFC3339, toStr)
		}
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date range format.")
			return
		}
		found, err = gigs.FindByDateBetween(from, to)
	case c.Query("venue") != "":
		found, err = gigs.FindByVenue(c.Query("venue"))
	default:
		found, err = gigs.FindAll()
	}
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error retrieving gigs.")
		return
	}

	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}
	limitNum, err := helpers.StringToInt(limit)
	if err != nil || limitNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	totalCount := len(found)
	offset := (pageNum - 1) * limitNum
	if offset > totalCount {
		offset = totalCount
	}
	end := offset + limitNum
	if end > totalCount {
		end = totalCount
	}

	responses := make([]payloads.GigResponse, 0, end-offset)
	for i := offset; i < end; i++ {
		responses = append(responses, *mappers.GigToResponse(&found[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"gigs":        responses,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + limitNum - 1) / limitNum,
	})
}

func UpdateGig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gig id.")
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	venue := c.PostForm("venue")

	dateStr := c.PostForm("date")
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date format.")
		return
	}

	if title == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gigs := repository.NewGigRepository(db.(*gorm.DB))

	gig, err := gigs.FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Gig not found.")
		return
	}

	req := payloads.GigRequest{
		Title:       title,
		Description: description,
		Venue:       venue,
		Date:        date,
		ImageURL:    gig.ImageURL,
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		upload, uploadErr := helpers.UploadImage(c, imageFile, "gig_posters")
		if uploadErr != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, uploadErr.Error())
			return
		}
		if gig.ImageURL != "" {
			if err := helpers.DeleteFile(gig.ImageURL); err != nil {
				fmt.Printf("Error deleting old gig image: %v\n", err)
			}
		}
		req.ImageURL = upload.Path
	}

	mappers.UpdateGigEntity(gig, &req)

	saved, err := gigs.Save(gig)
	if err != nil {
		helpers.RespondWithAppError(c, err, "A gig with this title already exists.")
		return
	}

	c.JSON(http.StatusOK, mappers.GigToResponse(saved))
}

func DeleteGig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gig id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewGigRepository(db.(*gorm.DB)).Delete(id); err != nil {
		helpers.RespondWithAppError(c, err, "Failed to delete gig.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted successfully."})
}
