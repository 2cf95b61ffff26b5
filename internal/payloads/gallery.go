package payloads

import (
	"time"

	"github.com/google/uuid"
)

type GalleryRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	GalleryDate time.Time `json:"gallery_date" binding:"required"`
}

type GalleryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	GalleryDate time.Time       `json:"gallery_date"`
	Slug        string          `json:"slug"`
	Images      []ImageResponse `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ImageRequest struct {
	ImageURL   string    `json:"image_url" binding:"required,url,max=500"`
	Author     string    `json:"author" binding:"max=255"`
	UploadDate time.Time `json:"upload_date"`
}

type ImageResponse struct {
	ID            uuid.UUID `json:"id"`
	ImageURL      string    `json:"image_url"`
	Author        string    `json:"author"`
	Filename      string    `json:"filename"`
	MimeType      string    `json:"mime_type"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	UploadDate    time.Time `json:"upload_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
