package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Officer is a roster entry on the public officers page, sorted by
// DisplayOrder.
type Officer struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Position     string         `json:"position" gorm:"size:255;not null"`
	Course       string         `json:"course,omitempty" gorm:"size:50"`
	Section      string         `json:"section,omitempty" gorm:"size:20"`
	YearLevel    string         `json:"year_level,omitempty" gorm:"size:50"`
	Term         string         `json:"term,omitempty" gorm:"size:20"`
	Image        string         `json:"image,omitempty" gorm:"size:500"`
	DisplayOrder int            `json:"order" gorm:"column:display_order;not null;default:0;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Officer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
