package handlers

import (
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

// UploadGalleryImage stores the uploaded file on disk and persists an Image
// owned by the gallery in the route. The stored record keeps the sniffed
// MIME type and size, not what the client claimed.
func UploadGalleryImage(c *gin.Context) {
	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gallery id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	if _, err := repository.NewGalleryRepository(gormDB).FindByID(galleryID); err != nil {
		helpers.RespondWithAppError(c, err, "Gallery not found.")
		return
	}

	imageFile, err := c.FormFile("image")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing image file.")
		return
	}

	upload, err := helpers.UploadImage(c, imageFile, "gallery_images")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	image := &models.Image{
		ID:            uuid.New(),
		ImageURL:      upload.Path,
		Author:        c.PostForm("author"),
		Filename:      upload.Filename,
		MimeType:      upload.MimeType,
		FileSizeBytes: upload.Size,
		UploadDate:    time.Now(),
		GalleryID:     galleryID,
	}

	saved, err := repository.NewImageRepository(gormDB).Save(image)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Failed to store image.")
		return
	}

	c.JSON(http.StatusCreated, mappers.ImageToResponse(saved))
}

func ListGalleryImages(c *gin.Context) {
	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gallery id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	images, err := repository.NewImageRepository(db.(*gorm.DB)).FindAllByGallery(galleryID)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error retrieving images.")
		return
	}

	responses := make([]payloads.ImageResponse, 0, len(images))
	for i := range images {
		responses = append(responses, *mappers.ImageToResponse(&images[i]))
	}

	c.JSON(http.StatusOK, gin.H{"images": responses, "total": len(responses)})
}

func DeleteImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid image id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	images := repository.NewImageRepository(db.(*gorm.DB))

	image, err := images.FindByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Image not found.")
		return
	}

	if err := images.Delete(id); err != nil {
		helpers.RespondWithAppError(c, err, "Failed to delete image.")
		return
	}

	if err := helpers.DeleteFile(image.ImageURL); err != nil {
		// The row is gone; a leftover file on disk is not worth failing the request.
		c.JSON(http.StatusOK, gin.H{"message": "Image deleted, file cleanup failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully."})
}
