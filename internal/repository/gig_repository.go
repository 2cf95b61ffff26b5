package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type GigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

func (r *GigRepository) Save(gig *models.Gig) (*models.Gig, error) {
	if err := r.db.Save(gig).Error; err != nil {
		return nil, translateError(err)
	}
	return gig, nil
}

func (r *GigRepository) FindByID(id uuid.UUID) (*models.Gig, error) {
	var gig models.Gig
	if err := r.db.Where("id = ?", id).First(&gig).Error; err != nil {
		return nil, translateError(err)
	}
	return &gig, nil
}

// FindByTitle matches case-insensitively; gig titles are unique regardless
// of casing.
func (r *GigRepository) FindByTitle(title string) (*models.Gig, error) {
	var gig models.Gig
	if err := r.db.Where("LOWER(title) = LOWER(?)", title).First(&gig).Error; err != nil {
		return nil, translateError(err)
	}
	return &gig, nil
}

func (r *GigRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Gig{}).Where("LOWER(title) = LOWER(?)", title).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *GigRepository) FindByDate(date time.Time) ([]models.Gig, error) {
	var gigs []models.Gig
	if err := r.db.Where("date = ?", date).Find(&gigs).Error; err != nil {
		return nil, translateError(err)
	}
	return gigs, nil
}

func (r *GigRepository) FindByDateBetween(start, end time.Time) ([]models.Gig, error) {
	var gigs []models.Gig
	if err := r.db.Where("date BETWEEN ? AND ?", start, end).Order("date ASC").Find(&gigs).Error; err != nil {
		return nil, translateError(err)
	}
	return gigs, nil
}

func (r *GigRepository) FindByVenue(venue string) ([]models.Gig, error) {
	var gigs []models.Gig
	if err := r.db.Where("venue = ?", venue).Find(&gigs).Error; err != nil {
		return nil, translateError(err)
	}
	return gigs, nil
}

func (r *GigRepository) FindAll() ([]models.Gig, error) {
	var gigs []models.Gig
	if err := r.db.Order("date ASC").Find(&gigs).Error; err != nil {
		return nil, translateError(err)
	}
	return gigs, nil
}

func (r *GigRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Gig{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
