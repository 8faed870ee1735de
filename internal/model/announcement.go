package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement publication statuses.
const (
	AnnouncementPublished = "Published"
	AnnouncementDraft     = "Draft"
)

// Announcement is a public news item. Drafts are visible only in the back
// office.
type Announcement struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Category  string         `json:"category,omitempty" gorm:"size:50"`
	Date      string         `json:"date,omitempty" gorm:"size:20"`
	Status    string         `json:"status" gorm:"size:20;default:'Published';index"`
	ImageURL  string         `json:"image_url,omitempty" gorm:"size:500"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
