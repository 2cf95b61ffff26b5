package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Welcome struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Title              string    `gorm:"not null;size:500"`
	SubTitle           string    `gorm:"not null;size:1000"`
	ButtonText         string    `gorm:"not null;size:255"`
	BackgroundImageURL string    `gorm:"not null;size:500"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (welcome *Welcome) BeforeCreate(tx *gorm.DB) (err error) {
	if welcome.ID == uuid.Nil {
		welcome.ID = uuid.New()
	}
	return
}
