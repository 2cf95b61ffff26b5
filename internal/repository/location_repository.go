package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Save inserts when the id is unset and updates otherwise. A uniqueness
// violation comes back as ErrConflict.
func (r *LocationRepository) Save(location *models.Location) (*models.Location, error) {
	if err := r.db.Save(location).Error; err != nil {
		return nil, translateError(err)
	}
	return location, nil
}

func (r *LocationRepository) FindByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	if err := r.db.Preload("Events").Where("id = ?", id).First(&location).Error; err != nil {
		return nil, translateError(err)
	}
	return &location, nil
}

// FindByName returns every location carrying the given name. Name is not
// unique at the data layer, so callers must handle multiple matches.
func (r *LocationRepository) FindByName(name string) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Preload("Events").Where("name = ?", name).Find(&locations).Error; err != nil {
		return nil, translateError(err)
	}
	return locations, nil
}

// FindByAddress matches on all five address columns. In practice at most one
// location sits at a given address, but the contract allows zero or more.
func (r *LocationRepository) FindByAddress(address models.Address) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Preload("Events").
		Where("street = ? AND street_number = ? AND postal_code = ? AND city = ? AND country = ?",
			address.Street, address.StreetNumber, address.PostalCode, address.City, address.Country).
		Find(&locations).Error
	if err != nil {
		return nil, translateError(err)
	}
	return locations, nil
}

func (r *LocationRepository) FindAll() ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Preload("Events").Order("created_at DESC").Find(&locations).Error; err != nil {
		return nil, translateError(err)
	}
	return locations, nil
}

// Delete removes the location and every event it owns in one transaction.
// The events go first so no event row is ever left referencing a deleted
// location.
func (r *LocationRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("location_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return translateError(err)
		}
		result := tx.Where("id = ?", id).Delete(&models.Location{})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound)
		}
		return nil
	})
}
