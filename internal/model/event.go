package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a scheduled organization activity members can register for.
type Event struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Date        string         `json:"date" gorm:"size:20;not null;index"`
	Time        string         `json:"time,omitempty" gorm:"size:20"`
	Venue       string         `json:"venue,omitempty" gorm:"size:255"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string         `json:"image_url,omitempty" gorm:"size:500"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
