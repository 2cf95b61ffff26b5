package mappers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
)

func TestGalleryMapperNilSafety(t *testing.T) {
	if GalleryToResponse(nil) != nil {
		t.Errorf("nil entity must map to nil response")
	}
	if GalleryToEntity(nil) != nil {
		t.Errorf("nil request must map to nil entity")
	}
	if ImageToResponse(nil) != nil || ImageToEntity(nil) != nil {
		t.Errorf("nil image must map to nil")
	}
	entity := &models.Gallery{Title: "Sommerkonzert"}
	UpdateGalleryEntity(entity, nil)
	UpdateGalleryEntity(nil, &payloads.GalleryRequest{Title: "Kirtag"})
	if entity.Title != "Sommerkonzert" {
		t.Errorf("nil update mutated the entity")
	}
}

func TestGalleryToResponseIncludesOwnedImages(t *testing.T) {
	uploaded := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	entity := &models.Gallery{
		ID:          uuid.New(),
		Title:       "Sommerkonzert 2025",
		GalleryDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Slug:        "sommerkonzert-2025",
		Images: []models.Image{
			{ID: uuid.New(), ImageURL: "/uploads/a.jpg", Author: "M. Gruber", MimeType: "image/jpeg", FileSizeBytes: 120000, UploadDate: uploaded},
			{ID: uuid.New(), ImageURL: "/uploads/b.jpg", Author: "M. Gruber", MimeType: "image/jpeg", FileSizeBytes: 98000, UploadDate: uploaded},
		},
	}

	response := GalleryToResponse(entity)

	if len(response.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(response.Images))
	}
	if response.Images[0].ImageURL != "/uploads/a.jpg" || response.Images[0].FileSizeBytes != 120000 {
		t.Errorf("image fields lost: %+v", response.Images[0])
	}
	if response.Slug != "sommerkonzert-2025" {
		t.Errorf("slug not carried into response")
	}
}

func TestUpdateGalleryEntityLeavesImagesAndSlugAlone(t *testing.T) {
	entity := &models.Gallery{
		ID:     uuid.New(),
		Title:  "Sommerkonzert 2025",
		Slug:   "sommerkonzert-2025",
		Images: []models.Image{{ID: uuid.New(), ImageURL: "/uploads/a.jpg"}},
	}

	UpdateGalleryEntity(entity, &payloads.GalleryRequest{
		Title:       "Herbstkonzert 2025",
		GalleryDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	if entity.Title != "Herbstkonzert 2025" {
		t.Errorf("title not updated")
	}
	// slug regeneration happens in the BeforeSave hook, images belong to the
	// image endpoints; the mapper touches neither
	if entity.Slug != "sommerkonzert-2025" {
		t.Errorf("mapper must not regenerate the slug")
	}
	if len(entity.Images) != 1 {
		t.Errorf("mapper must not touch the owned images")
	}
}
