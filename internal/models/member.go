package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Instrument string

const (
	InstrumentFluegelhorn Instrument = "FLUEGELHORN"
	InstrumentTrumpet     Instrument = "TRUMPET"
	InstrumentFlute       Instrument = "FLUTE"
	InstrumentClarinet    Instrument = "CLARINET"
	InstrumentSaxophone   Instrument = "SAXOPHONE"
	InstrumentTenorhorn   Instrument = "TENORHORN"
	InstrumentTrombone    Instrument = "TROMBONE"
	InstrumentHorn        Instrument = "HORN"
	InstrumentTuba        Instrument = "TUBA"
	InstrumentPercussion  Instrument = "PERCUSSION"
)

type Section string

const (
	SectionHighBrass Section = "HIGH_BRASS"
	SectionLowBrass  Section = "LOW_BRASS"
	SectionWoodwind  Section = "WOODWIND"
	SectionRhythm    Section = "RHYTHM"
)

// Member uses an explicit soft delete: DeletedAt is a plain nullable
// timestamp and every "active" query filters on it visibly, instead of
// relying on gorm.DeletedAt's implicit scope.
type Member struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName   string    `gorm:"not null;size:100"`
	LastName    string    `gorm:"not null;size:100"`
	Instrument  Instrument `gorm:"not null;size:20"`
	Section     Section    `gorm:"not null;size:20"`
	AvatarURL   string     `gorm:"size:255"`
	DateJoined  time.Time
	Notes       string `gorm:"type:text"`
	PhoneNumber string `gorm:"size:20"`
	Address     Address `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

func (member *Member) BeforeCreate(tx *gorm.DB) (err error) {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	return
}

// IsDeleted reports whether the member has been soft deleted.
func (member *Member) IsDeleted() bool {
	return member.DeletedAt != nil
}
