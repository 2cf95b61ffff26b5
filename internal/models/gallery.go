package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gallery exclusively owns its Images: deleting a gallery deletes every image
// in it, and an image record is never shared between galleries. The slug is
// derived from the title before every save.
type Gallery struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"not null;unique"`
	GalleryDate time.Time
	Slug        string  `gorm:"unique;size:255"`
	Images      []Image `gorm:"foreignKey:GalleryID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (gallery *Gallery) BeforeCreate(tx *gorm.DB) (err error) {
	if gallery.ID == uuid.Nil {
		gallery.ID = uuid.New()
	}
	return
}

func (gallery *Gallery) BeforeSave(tx *gorm.DB) (err error) {
	gallery.Slug = Slugify(gallery.Title)
	return
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify lowercases the input and keeps only letters, digits and hyphens.
func Slugify(input string) string {
	slug := strings.ToLower(input)
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	return slugSpaces.ReplaceAllString(slug, "-")
}
