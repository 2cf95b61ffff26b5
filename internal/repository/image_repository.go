package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Save(image *models.Image) (*models.Image, error) {
	if err := r.db.Save(image).Error; err != nil {
		return nil, translateError(err)
	}
	return image, nil
}

func (r *ImageRepository) FindByID(id uuid.UUID) (*models.Image, error) {
	var image models.Image
	if err := r.db.Where("id = ?", id).First(&image).Error; err != nil {
		return nil, translateError(err)
	}
	return &image, nil
}

func (r *ImageRepository) FindAllByGallery(galleryID uuid.UUID) ([]models.Image, error) {
	var images []models.Image
	if err := r.db.Where("gallery_id = ?", galleryID).Order("upload_date ASC").Find(&images).Error; err != nil {
		return nil, translateError(err)
	}
	return images, nil
}

func (r *ImageRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Image{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
