package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Save enforces title uniqueness at the persistence boundary: a duplicate
// title surfaces as ErrConflict.
func (r *EventRepository) Save(event *models.Event) (*models.Event, error) {
	if err := r.db.Save(event).Error; err != nil {
		return nil, translateError(err)
	}
	return event, nil
}

func (r *EventRepository) FindByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Location").Where("id = ?", id).First(&event).Error; err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *EventRepository) FindByTitle(title string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Location").Where("title = ?", title).First(&event).Error; err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

// FindByLocation is a narrow lookup returning the first event at the given
// location, not a full listing. Use FindAllByLocation when every owned event
// is needed.
func (r *EventRepository) FindByLocation(location *models.Location) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Location").Where("location_id = ?", location.ID).First(&event).Error; err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *EventRepository) FindAllByLocation(location *models.Location) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Preload("Location").Where("location_id = ?", location.ID).Order("date ASC").Find(&events).Error; err != nil {
		return nil, translateError(err)
	}
	return events, nil
}

func (r *EventRepository) FindAll() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Preload("Location").Order("date ASC").Find(&events).Error; err != nil {
		return nil, translateError(err)
	}
	return events, nil
}

func (r *EventRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
