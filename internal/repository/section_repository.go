package repository

import (
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

// AboutRepository and WelcomeRepository back the single-row "about" and
// "welcome" sections of the site. Get returns the current row; Save either
// creates the first row or updates the existing one.

type AboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) *AboutRepository {
	return &AboutRepository{db: db}
}

func (r *AboutRepository) Get() (*models.About, error) {
	var about models.About
	if err := r.db.First(&about).Error; err != nil {
		return nil, translateError(err)
	}
	return &about, nil
}

func (r *AboutRepository) Save(about *models.About) (*models.About, error) {
	if err := r.db.Save(about).Error; err != nil {
		return nil, translateError(err)
	}
	return about, nil
}

type WelcomeRepository struct {
	db *gorm.DB
}

func NewWelcomeRepository(db *gorm.DB) *WelcomeRepository {
	return &WelcomeRepository{db: db}
}

func (r *WelcomeRepository) Get() (*models.Welcome, error) {
	var welcome models.Welcome
	if err := r.db.First(&welcome).Error; err != nil {
		return nil, translateError(err)
	}
	return &welcome, nil
}

func (r *WelcomeRepository) Save(welcome *models.Welcome) (*models.Welcome, error) {
	if err := r.db.Save(welcome).Error; err != nil {
		return nil, translateError(err)
	}
	return welcome, nil
}
