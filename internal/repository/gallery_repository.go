package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Save(gallery *models.Gallery) (*models.Gallery, error) {
	if err := r.db.Save(gallery).Error; err != nil {
		return nil, translateError(err)
	}
	return gallery, nil
}

func (r *GalleryRepository) FindByID(id uuid.UUID) (*models.Gallery, error) {
	var gallery models.Gallery
	if err := r.db.Preload("Images").Where("id = ?", id).First(&gallery).Error; err != nil {
		return nil, translateError(err)
	}
	return &gallery, nil
}

func (r *GalleryRepository) FindByTitle(title string) (*models.Gallery, error) {
	var gallery models.Gallery
	if err := r.db.Preload("Images").Where("title = ?", title).First(&gallery).Error; err != nil {
		return nil, translateError(err)
	}
	return &gallery, nil
}

func (r *GalleryRepository) FindBySlug(slug string) (*models.Gallery, error) {
	var gallery models.Gallery
	if err := r.db.Preload("Images").Where("slug = ?", slug).First(&gallery).Error; err != nil {
		return nil, translateError(err)
	}
	return &gallery, nil
}

func (r *GalleryRepository) FindAll() ([]models.Gallery, error) {
	var galleries []models.Gallery
	if err := r.db.Preload("Images").Order("gallery_date DESC").Find(&galleries).Error; err != nil {
		return nil, translateError(err)
	}
	return galleries, nil
}

// Delete removes the gallery together with every image it owns; an image
// record never outlives its gallery.
func (r *GalleryRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return translateError(err)
		}
		result := tx.Where("id = ?", id).Delete(&models.Gallery{})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound)
		}
		return nil
	})
}
