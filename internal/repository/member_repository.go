package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

// MemberRepository implements the soft-delete variant of the query contract:
// deleted members stay in storage with a deletion timestamp, and every
// "active" query filters them out with an explicit deleted_at IS NULL
// condition so the semantics stay visible in the query text.
type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Save(member *models.Member) (*models.Member, error) {
	if err := r.db.Save(member).Error; err != nil {
		return nil, translateError(err)
	}
	return member, nil
}

func (r *MemberRepository) FindAllActive() ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Where("deleted_at IS NULL").Order("last_name ASC").Find(&members).Error; err != nil {
		return nil, translateError(err)
	}
	return members, nil
}

func (r *MemberRepository) FindActiveByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&member).Error; err != nil {
		return nil, translateError(err)
	}
	return &member, nil
}

// FindAll includes soft-deleted members; admin audit paths only.
func (r *MemberRepository) FindAll() ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Order("last_name ASC").Find(&members).Error; err != nil {
		return nil, translateError(err)
	}
	return members, nil
}

// SoftDelete stamps deleted_at and keeps the row. Deleting an already
// deleted or unknown member yields ErrNotFound.
func (r *MemberRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.Member{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
